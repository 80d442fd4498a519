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
	"encoding/binary"
	"fmt"

	"github.com/poiesic/resumatch/core"
)

// MarshalID serializes an ID to 8 big-endian bytes. Keys use this form so
// that badger's byte order matches numeric ID order; record values embed IDs
// through core.IDMUS instead.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: id needs 8 bytes, got %d", ErrTruncatedData, len(data))
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

// MarshalResumeRecord serializes a ResumeRecord to bytes.
func MarshalResumeRecord(record *core.ResumeRecord) []byte {
	buf := make([]byte, core.ResumeRecordMUS.Size(*record))
	core.ResumeRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalResumeRecord deserializes a ResumeRecord from bytes.
func UnmarshalResumeRecord(data []byte) (*core.ResumeRecord, error) {
	record, _, err := core.ResumeRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(data, err)
	}
	return &record, nil
}

// MarshalJobRequirement serializes a JobRequirement to bytes.
func MarshalJobRequirement(job *core.JobRequirement) []byte {
	buf := make([]byte, core.JobRequirementMUS.Size(*job))
	core.JobRequirementMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJobRequirement deserializes a JobRequirement from bytes.
func UnmarshalJobRequirement(data []byte) (*core.JobRequirement, error) {
	job, _, err := core.JobRequirementMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(data, err)
	}
	return &job, nil
}

// MarshalScreeningResult serializes a ScreeningResult to bytes.
func MarshalScreeningResult(result *core.ScreeningResult) []byte {
	buf := make([]byte, core.ScreeningResultMUS.Size(*result))
	core.ScreeningResultMUS.Marshal(*result, buf)
	return buf
}

// UnmarshalScreeningResult deserializes a ScreeningResult from bytes.
func UnmarshalScreeningResult(data []byte) (*core.ScreeningResult, error) {
	result, _, err := core.ScreeningResultMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(data, err)
	}
	return &result, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(data, err)
	}
	return &checkpoint, nil
}

func decodeError(data []byte, err error) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty value", ErrTruncatedData)
	}
	return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
}
