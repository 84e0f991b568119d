package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/models"
)

// RestStore talks to a hosted Postgres table over its PostgREST API
// (Supabase's /rest/v1 endpoint).
type RestStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRestStore creates a store for the project at baseURL. A nil client means
// http.DefaultClient; no timeout is added beyond the transport's.
func NewRestStore(baseURL, apiKey string, client *http.Client) *RestStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &RestStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (s *RestStore) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", s.baseURL, url.PathEscape(table))
}

func (s *RestStore) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (s *RestStore) Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error) {
	if err := checkTable(table); err != nil {
		return models.StoredRecord{}, err
	}

	payload, err := json.Marshal([]models.Row{row})
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, s.tableURL(table), bytes.NewReader(payload))
	if err != nil {
		return models.StoredRecord{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	body, _, err := s.do(req)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("insert into %s: %w", table, err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("insert into %s: %w", table, err)
	}
	if len(rows) == 0 {
		return models.StoredRecord{}, fmt.Errorf("insert into %s: store returned no rows", table)
	}

	log.WithField("table", table).Debug("Inserted row through REST store")
	return recordFromFields(table, rows[0]), nil
}

func (s *RestStore) List(ctx context.Context, table string, page Page) ([]models.StoredRecord, int64, error) {
	if err := checkTable(table); err != nil {
		return nil, 0, err
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(page.Offset()))

	req, err := s.newRequest(ctx, http.MethodGet, s.tableURL(table)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	body, header, err := s.do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}
	items := make([]models.StoredRecord, 0, len(rows))
	for _, r := range rows {
		items = append(items, recordFromFields(table, r))
	}

	total := int64(len(items))
	if n, ok := parseContentRangeTotal(header.Get("Content-Range")); ok {
		total = n
	}
	return items, total, nil
}

func (s *RestStore) Close(context.Context) error { return nil }

func (s *RestStore) do(req *http.Request) ([]byte, http.Header, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &RemoteError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, remote); err != nil || remote.Message == "" {
			remote.Message = strings.TrimSpace(string(body))
		}
		return nil, nil, remote
	}
	return body, resp.Header, nil
}

func decodeRows(body []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	return rows, nil
}

// parseContentRangeTotal reads the total out of "0-24/3573" or "*/0".
func parseContentRangeTotal(v string) (int64, bool) {
	_, total, found := strings.Cut(v, "/")
	if !found || total == "*" {
		return 0, false
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
