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

import "errors"

// Repositories bundles the repositories sharing one backend.
type Repositories struct {
	Resumes     *ResumeRepository
	Jobs        *JobRepository
	Screenings  *ScreeningRepository
	Checkpoints *CheckpointRepository
	Backend     *Backend
}

// NewRepositories creates all repositories over backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	resumes, err := NewResumeRepository(backend)
	if err != nil {
		return nil, err
	}
	jobs, err := NewJobRepository(backend)
	if err != nil {
		return nil, err
	}
	screenings, err := NewScreeningRepository(backend)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Resumes:     resumes,
		Jobs:        jobs,
		Screenings:  screenings,
		Checkpoints: NewCheckpointRepository(backend),
		Backend:     backend,
	}, nil
}

// NewMemoryRepositories creates repositories over an in-memory backend for testing.
// Caller must Close the result when done.
func NewMemoryRepositories() (*Repositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	repos, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return repos, nil
}

// Close closes every repository and then the backend.
func (r *Repositories) Close() error {
	return errors.Join(
		r.Resumes.Close(),
		r.Jobs.Close(),
		r.Screenings.Close(),
		r.Backend.Close(),
	)
}
