// Package loader reads per-term JSON files from the data directory and
// produces normalized, validated Term records.
//
// Loading is a pure phase: no source file is touched. Terms missing a
// termId get a fresh identifier assigned in memory and a Backfill entry
// recording the rewritten file content; the caller persists backfills
// explicitly once the whole term set has validated.
package loader

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/lowerpower/www.mycal.net/internal/models"
	"github.com/lowerpower/www.mycal.net/internal/storage"
)

const dataExt = ".json"

var (
	slugRe    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	urnUUIDRe = regexp.MustCompile(`^urn:uuid:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Backfill records a pending write of a source file that gained a termId.
type Backfill struct {
	Path string
	Data []byte
}

// termSource mirrors the on-disk JSON shape of one term file. The slug is
// not part of the file; it comes from the filename stem.
type termSource struct {
	Name             string        `json:"name"`
	Date             string        `json:"date"`
	Description      string        `json:"description"`
	Links            []models.Link `json:"links"`
	SameAs           []string      `json:"sameAs,omitempty"`
	Aliases          []string      `json:"aliases,omitempty"`
	TermID           string        `json:"termId,omitempty"`
	TemporalCoverage string        `json:"temporalCoverage,omitempty"`
	StartDate        string        `json:"startDate,omitempty"`
	EndDate          string        `json:"endDate,omitempty"`
	DateISO          string        `json:"dateISO,omitempty"`
}

// notBlank rejects values that are empty after trimming.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

// Validate checks the schema rules for one term file.
func (s *termSource) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&s.Date, validation.Required, validation.By(notBlank)),
		validation.Field(&s.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&s.Links, validation.Required, validation.Length(1, 0)),
		validation.Field(&s.SameAs, validation.Each(validation.Required, validation.By(notBlank))),
		validation.Field(&s.Aliases, validation.Each(validation.Required, validation.By(notBlank),
			validation.Match(slugRe).Error("must be a lowercase slug"))),
		validation.Field(&s.TermID, validation.Match(urnUUIDRe).Error("must be a urn:uuid identifier")),
		validation.Field(&s.StartDate, validation.Date("2006-01-02")),
		validation.Field(&s.EndDate, validation.Date("2006-01-02")),
		validation.Field(&s.DateISO, validation.Date("2006-01-02")),
	)
}

// validateLinks checks each link entry individually so failures name the
// offending index.
func validateLinks(links []models.Link) error {
	for i, l := range links {
		if strings.TrimSpace(l.URL) == "" {
			return fmt.Errorf("links[%d].url: cannot be blank", i)
		}
		if strings.TrimSpace(l.Label) == "" {
			return fmt.Errorf("links[%d].label: cannot be blank", i)
		}
	}
	return nil
}

// validatePresence rejects optional fields that are present in the file but
// blank. JSON decoding cannot distinguish an absent field from an empty one,
// so this works on the raw key set.
func validatePresence(raw map[string]json.RawMessage) error {
	for _, field := range []string{"termId", "temporalCoverage", "startDate", "endDate", "dateISO"} {
		msg, ok := raw[field]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return fmt.Errorf("%s: must be a string", field)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s: cannot be blank", field)
		}
	}
	return nil
}

// Load reads every term file from the data directory, validates it, and
// returns the normalized terms sorted by slug plus any pending termId
// backfills. Any violation aborts the load with an error naming the file
// and field. Load never writes to disk.
func Load(store storage.Provider) ([]models.Term, []Backfill, error) {
	infos, err := store.List(dataExt)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}

	var (
		terms     []models.Term
		backfills []Backfill
	)
	for _, info := range infos {
		slug := strings.TrimSuffix(info.Path, dataExt)
		if !slugRe.MatchString(slug) {
			return nil, nil, fmt.Errorf("loader: %s: slug %q must match %s", info.Path, slug, slugRe)
		}

		data, err := store.Read(info.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: %w", err)
		}

		var src termSource
		if err := json.Unmarshal(data, &src); err != nil {
			return nil, nil, fmt.Errorf("loader: parse %s: %w", info.Path, err)
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, nil, fmt.Errorf("loader: parse %s: %w", info.Path, err)
		}

		if err := src.Validate(); err != nil {
			return nil, nil, fmt.Errorf("loader: %s: %w", info.Path, err)
		}
		if err := validateLinks(src.Links); err != nil {
			return nil, nil, fmt.Errorf("loader: %s: %w", info.Path, err)
		}
		if err := validatePresence(raw); err != nil {
			return nil, nil, fmt.Errorf("loader: %s: %w", info.Path, err)
		}

		// Assign a stable identifier once; subsequent runs keep it.
		if src.TermID == "" {
			src.TermID = "urn:uuid:" + uuid.NewString()
			updated, err := json.MarshalIndent(&src, "", "  ")
			if err != nil {
				return nil, nil, fmt.Errorf("loader: %s: marshal backfill: %w", info.Path, err)
			}
			backfills = append(backfills, Backfill{Path: info.Path, Data: append(updated, '\n')})
		}

		terms = append(terms, models.Term{
			Slug:             slug,
			Name:             src.Name,
			Date:             src.Date,
			Description:      src.Description,
			Links:            src.Links,
			SameAs:           src.SameAs,
			Aliases:          src.Aliases,
			TermID:           src.TermID,
			TemporalCoverage: src.TemporalCoverage,
			StartDate:        src.StartDate,
			EndDate:          src.EndDate,
			DateISO:          src.DateISO,
			SourcePath:       info.Path,
			ModTime:          info.ModTime,
		})
	}

	sort.Slice(terms, func(i, j int) bool { return terms[i].Slug < terms[j].Slug })
	return terms, backfills, nil
}

// Persist writes pending termId backfills to their source files. It is the
// explicit second phase of loading and runs only after the whole term set
// has validated.
func Persist(store storage.Provider, backfills []Backfill) error {
	for _, b := range backfills {
		if err := store.Write(b.Path, b.Data); err != nil {
			return fmt.Errorf("loader: backfill %s: %w", b.Path, err)
		}
	}
	return nil
}
