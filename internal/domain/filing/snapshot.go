package filing

import (
	"encoding/json"
	"time"

	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/shared"
)

// Snapshot freezes the exact dataset a filing was generated from. It is
// written once per generation and re-read for later exports; live Member and
// Contribution records never participate in an export.
type Snapshot struct {
	Employer    Employer              `json:"organization"`
	Period      contribution.Period   `json:"period"`
	GeneratedAt time.Time             `json:"generated_at"`
	Records     []contribution.Record `json:"contributions"`
}

// NewSnapshot captures a dataset.
func NewSnapshot(d *Dataset) *Snapshot {
	return &Snapshot{
		Employer:    d.Employer,
		Period:      d.Period,
		GeneratedAt: d.GeneratedAt,
		Records:     d.Records,
	}
}

// Dataset rebuilds the rendering input. Rendering the result twice yields
// byte-identical output because GeneratedAt comes from the snapshot, not the
// clock.
func (s *Snapshot) Dataset() *Dataset {
	return &Dataset{
		Employer:    s.Employer,
		Period:      s.Period,
		GeneratedAt: s.GeneratedAt,
		Records:     s.Records,
	}
}

// Encode serializes the snapshot to its opaque stored form.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, shared.NewGenerationError("failed to encode filing snapshot: " + err.Error())
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot blob. A malformed or empty blob is
// a generation error for the one export that needed it.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	if len(data) == 0 {
		return nil, shared.NewGenerationError("filing snapshot is missing")
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, shared.NewGenerationError("failed to decode filing snapshot: " + err.Error())
	}
	return &s, nil
}
