package catalog

import "fmt"

// Columns is the catalog schema in persisted column order. The order matches
// the historical file layout and must not change without migrating existing
// catalogs.
var Columns = []string{
	"title",
	"year",
	"rated",
	"released",
	"runtime",
	"genre",
	"director",
	"writer",
	"actors",
	"plot",
	"language",
	"country",
	"awards",
	"poster",
	"ratings",
	"metascore",
	"imdb_rating",
	"imdb_votes",
	"imdb_id",
	"type",
	"dvd",
	"box_office",
	"production",
	"website",
	"response",
	"in_rym",
}

// TypeMovie is the media type checked against the community site. Other
// types keep an unknown verdict permanently.
const TypeMovie = "movie"

// Record is one catalog row. All descriptive fields are stored verbatim as
// returned by the movie database; only InRYM is written by this program.
type Record struct {
	Title      string
	Year       string
	Rated      string
	Released   string
	Runtime    string
	Genre      string
	Director   string
	Writer     string
	Actors     string
	Plot       string
	Language   string
	Country    string
	Awards     string
	Poster     string
	Ratings    string
	Metascore  string
	ImdbRating string
	ImdbVotes  string
	ImdbID     string
	Type       string
	DVD        string
	BoxOffice  string
	Production string
	Website    string
	Response   string
	InRYM      Verdict
}

func (r *Record) row() []string {
	return []string{
		r.Title,
		r.Year,
		r.Rated,
		r.Released,
		r.Runtime,
		r.Genre,
		r.Director,
		r.Writer,
		r.Actors,
		r.Plot,
		r.Language,
		r.Country,
		r.Awards,
		r.Poster,
		r.Ratings,
		r.Metascore,
		r.ImdbRating,
		r.ImdbVotes,
		r.ImdbID,
		r.Type,
		r.DVD,
		r.BoxOffice,
		r.Production,
		r.Website,
		r.Response,
		r.InRYM.cell(),
	}
}

func recordFromRow(row []string) (*Record, error) {
	if len(row) != len(Columns) {
		return nil, fmt.Errorf("catalog: row has %d columns, want %d", len(row), len(Columns))
	}
	verdict, err := verdictFromCell(row[25])
	if err != nil {
		return nil, err
	}
	return &Record{
		Title:      row[0],
		Year:       row[1],
		Rated:      row[2],
		Released:   row[3],
		Runtime:    row[4],
		Genre:      row[5],
		Director:   row[6],
		Writer:     row[7],
		Actors:     row[8],
		Plot:       row[9],
		Language:   row[10],
		Country:    row[11],
		Awards:     row[12],
		Poster:     row[13],
		Ratings:    row[14],
		Metascore:  row[15],
		ImdbRating: row[16],
		ImdbVotes:  row[17],
		ImdbID:     row[18],
		Type:       row[19],
		DVD:        row[20],
		BoxOffice:  row[21],
		Production: row[22],
		Website:    row[23],
		Response:   row[24],
		InRYM:      verdict,
	}, nil
}
