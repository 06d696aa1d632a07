package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) exportSlips(c *gin.Context) {
	pid := strings.TrimSpace(c.Query("participant"))
	participantID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "participant must be a UUID"})
		return
	}

	xlsx, err := h.exporter.ExportSlipsXLSX(c.Request.Context(), participantID)
	if err != nil {
		h.logger.Error("export.xlsx.failed", "participant_id", pid, "err", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="slips-`+pid+`.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}
