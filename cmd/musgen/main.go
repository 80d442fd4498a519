package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/resumatch/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/resumatch/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())

	// Timestamps are stored as Unix microseconds
	micros := typeops.WithTimeUnit(typeops.Micro)

	err = g.AddStruct(reflect.TypeFor[core.ResumeRecord](),
		structops.WithField(),       // ID
		structops.WithField(),       // Filename
		structops.WithField(),       // RawText
		structops.WithField(),       // NormalizedText
		structops.WithField(),       // Skills
		structops.WithField(),       // Category
		structops.WithField(micros), // InsertedAt
		structops.WithField(micros)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.JobRequirement](),
		structops.WithField(), // ID
		structops.WithField(), // Title
		structops.WithField(), // Description
		structops.WithField(), // RequiredSkills
		structops.WithField(), // Experience
		structops.WithField()) // Department
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.ScreeningResult](),
		structops.WithField(),       // ID
		structops.WithField(),       // JobID
		structops.WithField(),       // ResumeID
		structops.WithField(),       // Filename
		structops.WithField(),       // Score
		structops.WithField(),       // MatchedSkills
		structops.WithField(),       // DepartmentMatch
		structops.WithField(),       // ExperienceLevel
		structops.WithField(),       // Category
		structops.WithField(micros)) // CreatedAt
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Checkpoint](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(micros))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
