package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-package/internal/domain"
)

// manifestHeaders are the column names written as the first CSV row.
var manifestHeaders = []string{
	"package_name", "passenger_number", "passenger_name", "tier",
	"destination", "activity_name", "activity_cost",
}

// GetManifest handles GET /packages/{id}/manifest.
// It returns one row per enrolled passenger and joined activity; a passenger
// who joined nothing appears once with empty activity columns.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetManifest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	format, err := queryFormat(r, "json", "csv")
	if err != nil {
		badParam(w, r, err)
		return
	}

	rows, err := s.bookings.Manifest(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}

	if format == "csv" {
		body, err := encodeManifestCSV(rows)
		if err != nil {
			s.fail(w, r, err, "")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="manifest.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = body.WriteTo(w)
		return
	}

	out := make([]manifestRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, manifestRowToResponse(row))
	}
	writeJSON(w, r, http.StatusOK, out)
}

// encodeManifestCSV writes the header row followed by one record per row.
func encodeManifestCSV(rows []domain.ManifestRow) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(manifestHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := cw.Write(manifestRecord(row)); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	return &buf, cw.Error()
}

// manifestRecord flattens a row. The cost column is empty when the passenger
// joined nothing.
func manifestRecord(row domain.ManifestRow) []string {
	cost := ""
	if row.ActivityName != "" {
		cost = row.ActivityCost.String()
	}
	return []string{
		row.PackageName,
		strconv.Itoa(row.PassengerNumber),
		row.PassengerName,
		string(row.Tier),
		row.Destination,
		row.ActivityName,
		cost,
	}
}
