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


package badger

import (
	"encoding/binary"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// Key prefixes. Every prefix ends with ':' so no prefix is a prefix of another.
const (
	resumeRecordPrefix    = "resrec:"
	jobRequirementPrefix  = "jobreq:"
	screeningResultPrefix = "scrres:"
	checkpointPrefix      = "chkpt:"
)

// makeResumeKey generates a key for a resume record by ID.
// Format: prefix + 8-byte big-endian ID, so keys iterate in ID order.
func makeResumeKey(id core.ID) []byte {
	buf := make([]byte, 0, len(resumeRecordPrefix)+8)
	buf = append(buf, resumeRecordPrefix...)
	return append(buf, storage.MarshalID(id)...)
}

// resumeIDFromKey extracts the ID from a resume key.
func resumeIDFromKey(key []byte) (core.ID, error) {
	return storage.UnmarshalID(key[len(resumeRecordPrefix):])
}

// makeJobKey generates a key for a job requirement by ID.
func makeJobKey(id string) []byte {
	return []byte(jobRequirementPrefix + id)
}

// makeScreeningJobPrefix generates the key prefix of all results for a job.
// Job IDs are free text, so the prefix uses their hash to keep one job's
// prefix from covering another's.
// Format: prefix + 8-byte hash(jobID) + ':'
func makeScreeningJobPrefix(jobID string) []byte {
	buf := make([]byte, len(screeningResultPrefix)+9)
	offset := copy(buf, screeningResultPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(jobID)))
	buf[offset+8] = ':'
	return buf
}

// makeScreeningKey generates a key for a screening result.
// Format: jobPrefix + resultID
func makeScreeningKey(jobID, resultID string) []byte {
	return append(makeScreeningJobPrefix(jobID), resultID...)
}

// makeCheckpointKey generates a key for processor checkpoints.
func makeCheckpointKey(processorType string) []byte {
	return []byte(checkpointPrefix + processorType)
}
