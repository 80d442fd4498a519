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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJobRequirement indicates a JobRequirement failed validation.
	ErrInvalidJobRequirement = errors.New("invalid job requirement")

	// ErrInvalidResumeRecord indicates a ResumeRecord failed validation.
	ErrInvalidResumeRecord = errors.New("invalid resume record")

	// ErrInvalidExperienceSpec indicates an experience requirement could not be parsed.
	ErrInvalidExperienceSpec = errors.New("invalid experience requirement")

	// ErrEmptyContent indicates the raw text of a resume is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyJobID indicates the job ID is empty.
	ErrEmptyJobID = errors.New("job id cannot be empty")
)

// ErrMalformedRecord indicates a stored record's encoding is inconsistent.
var ErrMalformedRecord = errors.New("malformed record encoding")
