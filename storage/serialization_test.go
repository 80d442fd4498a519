// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"testing"
	"time"

	"github.com/poiesic/resumatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.Len(t, data, 8)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalID_Ordered(t *testing.T) {
	// Byte order must follow numeric order for key iteration.
	assert.Less(t, string(MarshalID(255)), string(MarshalID(256)))
	assert.Less(t, string(MarshalID(1)), string(MarshalID(1<<40)))
}

func TestUnmarshalID_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"short data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalID(tt.data)
			assert.ErrorIs(t, err, ErrTruncatedData)
		})
	}
}

func TestMarshalUnmarshalResumeRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &core.ResumeRecord{
		ID:             core.IDFromContent("Senior Go developer"),
		Filename:       "alice.pdf",
		RawText:        "Senior Go developer",
		NormalizedText: "senior go developer",
		Skills:         []string{"go"},
		Category:       "Software Development",
		InsertedAt:     now,
		UpdatedAt:      now,
	}

	data := MarshalResumeRecord(record)

	decoded, err := UnmarshalResumeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestMarshalUnmarshalResumeRecord_Skills(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
	}{
		{"nil skills", nil},
		{"empty skills", []string{}},
		{"empty skill name", []string{""}},
		{"several skills", []string{"aws", "docker", "node.js", "c++"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &core.ResumeRecord{ID: 1, RawText: "text", Skills: tt.skills}

			decoded, err := UnmarshalResumeRecord(MarshalResumeRecord(record))
			require.NoError(t, err)
			assert.Equal(t, tt.skills, decoded.Skills)
			assert.True(t, decoded.InsertedAt.IsZero())
		})
	}
}

func TestMarshalUnmarshalJobRequirement(t *testing.T) {
	job := &core.JobRequirement{
		ID:             "backend-1",
		Title:          "Backend Engineer",
		Description:    "Build services in Go",
		RequiredSkills: []string{"go", "sql"},
		Experience:     "3-5+",
		Department:     "Engineering",
	}

	decoded, err := UnmarshalJobRequirement(MarshalJobRequirement(job))
	require.NoError(t, err)
	assert.Equal(t, job, decoded)
}

func TestMarshalUnmarshalScreeningResult(t *testing.T) {
	result := &core.ScreeningResult{
		ID:              "5f0c1f8e-7d0b-4c8e-9d8e-2f0d6b1b2a11",
		JobID:           "backend-1",
		ResumeID:        7,
		Score:           87,
		MatchedSkills:   []string{"go", "sql"},
		DepartmentMatch: true,
		ExperienceLevel: "3-5",
		Category:        "Software Development",
		CreatedAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data := MarshalScreeningResult(result)

	decoded, err := UnmarshalScreeningResult(data)
	require.NoError(t, err)
	assert.Equal(t, result, decoded)
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	checkpoint := &core.Checkpoint{
		ProcessorType: "reprocess",
		LastID:        core.ID(1 << 63),
		Processed:     1200,
		UpdatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 123456000, time.UTC),
	}

	decoded, err := UnmarshalCheckpoint(MarshalCheckpoint(checkpoint))
	require.NoError(t, err)
	assert.Equal(t, checkpoint, decoded)
}

func TestUnmarshal_Invalid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := UnmarshalJobRequirement(nil)
		assert.ErrorIs(t, err, ErrTruncatedData)
	})

	t.Run("truncated record", func(t *testing.T) {
		data := MarshalResumeRecord(&core.ResumeRecord{
			ID:      42,
			RawText: "Senior Go developer with ten years of distributed systems work",
		})

		_, err := UnmarshalResumeRecord(data[:len(data)/2])
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("skill count larger than data", func(t *testing.T) {
		data := MarshalJobRequirement(&core.JobRequirement{ID: "j", Title: "t", Description: "d"})
		// ID, Title and Description each take two bytes; the skill count follows.
		data = append(data[:6], 0x7e)

		_, err := UnmarshalJobRequirement(data)
		assert.ErrorIs(t, err, ErrSerializationFailed)
		assert.ErrorIs(t, err, core.ErrMalformedRecord)
	})
}
