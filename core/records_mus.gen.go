package core

// Serializers for the persisted records. Regenerate with `go generate ./core`
// after changing a record's fields; field order is the wire order.

import (
	"time"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	IDMUS              = idMUS{}
	ResumeRecordMUS    = resumeRecordMUS{}
	JobRequirementMUS  = jobRequirementMUS{}
	ScreeningResultMUS = screeningResultMUS{}
	CheckpointMUS      = checkpointMUS{}

	stringsMUS = stringSliceMUS{}
	timeMUS    = timeMicroMUS{}
)

var (
	_ mus.Serializer[ID]              = IDMUS
	_ mus.Serializer[ResumeRecord]    = ResumeRecordMUS
	_ mus.Serializer[JobRequirement]  = JobRequirementMUS
	_ mus.Serializer[ScreeningResult] = ScreeningResultMUS
	_ mus.Serializer[Checkpoint]      = CheckpointMUS
)

// ID

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	return ID(tmp), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// []string, with nil and empty kept distinct

type stringSliceMUS struct{}

func (s stringSliceMUS) Marshal(v []string, bs []byte) (n int) {
	if v == nil {
		return varint.Int.Marshal(-1, bs)
	}
	n = varint.Int.Marshal(len(v), bs)
	for _, e := range v {
		n += ord.String.Marshal(e, bs[n:])
	}
	return
}

func (s stringSliceMUS) Unmarshal(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length == -1 {
		return nil, n, nil
	}
	// Every element takes at least one byte.
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrMalformedRecord
	}
	v = make([]string, length)
	var n1 int
	for i := range v {
		v[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (s stringSliceMUS) Size(v []string) (size int) {
	if v == nil {
		return varint.Int.Size(-1)
	}
	size = varint.Int.Size(len(v))
	for _, e := range v {
		size += ord.String.Size(e)
	}
	return
}

func (s stringSliceMUS) Skip(bs []byte) (n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil || length == -1 {
		return
	}
	if length < 0 || length > len(bs)-n {
		return n, ErrMalformedRecord
	}
	var n1 int
	for range length {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// time.Time as Unix microseconds, decoded in UTC

type timeMicroMUS struct{}

func (s timeMicroMUS) Marshal(v time.Time, bs []byte) (n int) {
	return varint.Int64.Marshal(v.UnixMicro(), bs)
}

func (s timeMicroMUS) Unmarshal(bs []byte) (v time.Time, n int, err error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func (s timeMicroMUS) Size(v time.Time) (size int) {
	return varint.Int64.Size(v.UnixMicro())
}

func (s timeMicroMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int64.Skip(bs)
}

// ResumeRecord

type resumeRecordMUS struct{}

func (s resumeRecordMUS) Marshal(v ResumeRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += ord.String.Marshal(v.NormalizedText, bs[n:])
	n += stringsMUS.Marshal(v.Skills, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += timeMUS.Marshal(v.InsertedAt, bs[n:])
	return n + timeMUS.Marshal(v.UpdatedAt, bs[n:])
}

func (s resumeRecordMUS) Unmarshal(bs []byte) (v ResumeRecord, n int, err error) {
	v.ID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NormalizedText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s resumeRecordMUS) Size(v ResumeRecord) (size int) {
	size = IDMUS.Size(v.ID)
	size += ord.String.Size(v.Filename)
	size += ord.String.Size(v.RawText)
	size += ord.String.Size(v.NormalizedText)
	size += stringsMUS.Size(v.Skills)
	size += ord.String.Size(v.Category)
	size += timeMUS.Size(v.InsertedAt)
	return size + timeMUS.Size(v.UpdatedAt)
}

func (s resumeRecordMUS) Skip(bs []byte) (n int, err error) {
	return skipAll(bs,
		IDMUS.Skip,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		stringsMUS.Skip,
		ord.String.Skip,
		timeMUS.Skip,
		timeMUS.Skip)
}

// JobRequirement

type jobRequirementMUS struct{}

func (s jobRequirementMUS) Marshal(v JobRequirement, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += stringsMUS.Marshal(v.RequiredSkills, bs[n:])
	n += ord.String.Marshal(v.Experience, bs[n:])
	return n + ord.String.Marshal(v.Department, bs[n:])
}

func (s jobRequirementMUS) Unmarshal(bs []byte) (v JobRequirement, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RequiredSkills, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Experience, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Department, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jobRequirementMUS) Size(v JobRequirement) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += stringsMUS.Size(v.RequiredSkills)
	size += ord.String.Size(v.Experience)
	return size + ord.String.Size(v.Department)
}

func (s jobRequirementMUS) Skip(bs []byte) (n int, err error) {
	return skipAll(bs,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		stringsMUS.Skip,
		ord.String.Skip,
		ord.String.Skip)
}

// ScreeningResult

type screeningResultMUS struct{}

func (s screeningResultMUS) Marshal(v ScreeningResult, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.JobID, bs[n:])
	n += IDMUS.Marshal(v.ResumeID, bs[n:])
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += varint.Int.Marshal(v.Score, bs[n:])
	n += stringsMUS.Marshal(v.MatchedSkills, bs[n:])
	n += ord.Bool.Marshal(v.DepartmentMatch, bs[n:])
	n += ord.String.Marshal(v.ExperienceLevel, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	return n + timeMUS.Marshal(v.CreatedAt, bs[n:])
}

func (s screeningResultMUS) Unmarshal(bs []byte) (v ScreeningResult, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.JobID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResumeID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Score, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MatchedSkills, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DepartmentMatch, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExperienceLevel, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s screeningResultMUS) Size(v ScreeningResult) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.JobID)
	size += IDMUS.Size(v.ResumeID)
	size += ord.String.Size(v.Filename)
	size += varint.Int.Size(v.Score)
	size += stringsMUS.Size(v.MatchedSkills)
	size += ord.Bool.Size(v.DepartmentMatch)
	size += ord.String.Size(v.ExperienceLevel)
	size += ord.String.Size(v.Category)
	return size + timeMUS.Size(v.CreatedAt)
}

func (s screeningResultMUS) Skip(bs []byte) (n int, err error) {
	return skipAll(bs,
		ord.String.Skip,
		ord.String.Skip,
		IDMUS.Skip,
		ord.String.Skip,
		varint.Int.Skip,
		stringsMUS.Skip,
		ord.Bool.Skip,
		ord.String.Skip,
		ord.String.Skip,
		timeMUS.Skip)
}

// Checkpoint

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.ProcessorType, bs)
	n += IDMUS.Marshal(v.LastID, bs[n:])
	n += varint.Int.Marshal(v.Processed, bs[n:])
	return n + timeMUS.Marshal(v.UpdatedAt, bs[n:])
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	v.ProcessorType, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LastID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Processed, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	size = ord.String.Size(v.ProcessorType)
	size += IDMUS.Size(v.LastID)
	size += varint.Int.Size(v.Processed)
	return size + timeMUS.Size(v.UpdatedAt)
}

func (s checkpointMUS) Skip(bs []byte) (n int, err error) {
	return skipAll(bs,
		ord.String.Skip,
		IDMUS.Skip,
		varint.Int.Skip,
		timeMUS.Skip)
}

func skipAll(bs []byte, skips ...func([]byte) (int, error)) (n int, err error) {
	var n1 int
	for _, skip := range skips {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
