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


package core

import (
	"fmt"
	"strings"
)

// ValidateJobRequirement validates a JobRequirement according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Experience must be empty, "Any" or a parseable range
//
// NOT validated:
//   - RequiredSkills (an empty list is scored as zero skill match)
//   - Department (optional)
func ValidateJobRequirement(job *JobRequirement) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", ErrInvalidJobRequirement)
	}

	if strings.TrimSpace(job.ID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobRequirement, ErrEmptyJobID)
	}

	if _, _, err := ParseExperienceSpec(job.Experience); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJobRequirement, err)
	}

	return nil
}

// ValidateResumeRecord validates a ResumeRecord according to domain rules.
//
// Validation rules:
//   - RawText must contain at least one non-space character
//
// NOT validated (populated at ingestion):
//   - NormalizedText, Skills, Category
//   - ID (derived from RawText when zero)
func ValidateResumeRecord(record *ResumeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidResumeRecord)
	}

	if strings.TrimSpace(record.RawText) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResumeRecord, ErrEmptyContent)
	}

	return nil
}
