package omdb

import (
	"context"
	"encoding/json"

	"rymgap/internal/catalog"
)

// CatalogRecord converts the OMDb payload into a catalog row. The Ratings
// sub-array is flattened to JSON so it survives the tabular format. The
// verdict starts unknown.
func (m *Movie) CatalogRecord() *catalog.Record {
	ratings := ""
	if len(m.Ratings) > 0 {
		if encoded, err := json.Marshal(m.Ratings); err == nil {
			ratings = string(encoded)
		}
	}
	return &catalog.Record{
		Title:      m.Title,
		Year:       m.Year,
		Rated:      m.Rated,
		Released:   m.Released,
		Runtime:    m.Runtime,
		Genre:      m.Genre,
		Director:   m.Director,
		Writer:     m.Writer,
		Actors:     m.Actors,
		Plot:       m.Plot,
		Language:   m.Language,
		Country:    m.Country,
		Awards:     m.Awards,
		Poster:     m.Poster,
		Ratings:    ratings,
		Metascore:  m.Metascore,
		ImdbRating: m.ImdbRating,
		ImdbVotes:  m.ImdbVotes,
		ImdbID:     m.ImdbID,
		Type:       m.Type,
		DVD:        m.DVD,
		BoxOffice:  m.BoxOffice,
		Production: m.Production,
		Website:    m.Website,
		Response:   m.Response,
		InRYM:      catalog.VerdictUnknown,
	}
}

// Fetch looks up an identifier and returns it as a catalog record, or nil
// when OMDb has no entry. It satisfies the ingestion loop's fetcher contract.
func (c *Client) Fetch(ctx context.Context, imdbID string) (*catalog.Record, error) {
	movie, err := c.ByIMDbID(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil
	}
	return movie.CatalogRecord(), nil
}
