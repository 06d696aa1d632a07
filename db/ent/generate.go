package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/campdesk/slip-ingest/gen/ent",
			Schema:  "github.com/campdesk/slip-ingest/db/ent/schema",
		},
		entc.FeatureNames("sql/lock"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
