package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Config struct {
	URL        string
	Username   string
	Password   string
	Index      string
	MaxRetries int
}

// TourDocument - документ тура в поисковом индексе
type TourDocument struct {
	ID          int64     `json:"id"`
	TypeID      int64     `json:"type_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ElasticsearchClient представляет клиент для работы с индексом туров
type ElasticsearchClient struct {
	client *elasticsearch.Client
	config Config
}

// NewElasticsearchClient создает новый клиент Elasticsearch
func NewElasticsearchClient(cfg Config) (*ElasticsearchClient, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     []string{cfg.URL},
		Username:      cfg.Username,
		Password:      cfg.Password,
		RetryOnStatus: []int{502, 503, 504, 429},
		MaxRetries:    cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	client := &ElasticsearchClient{
		client: es,
		config: cfg,
	}

	if err := client.ensureIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return client, nil
}

// ensureIndex создает индекс если он не существует
func (c *ElasticsearchClient) ensureIndex(ctx context.Context) error {
	req := esapi.IndicesExistsRequest{
		Index: []string{c.config.Index},
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		slog.Info("Elasticsearch index already exists", "index", c.config.Index)
		return nil
	}

	// Create index with Russian analyzer
	mapping := map[string]interface{}{
		"settings": map[string]interface{}{
			"number_of_shards":   1,
			"number_of_replicas": 0,
			"analysis": map[string]interface{}{
				"analyzer": map[string]interface{}{
					"russian_analyzer": map[string]interface{}{
						"type":      "custom",
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "russian_stop", "russian_stemmer"},
					},
				},
				"filter": map[string]interface{}{
					"russian_stop": map[string]interface{}{
						"type":      "stop",
						"stopwords": "_russian_",
					},
					"russian_stemmer": map[string]interface{}{
						"type":     "stemmer",
						"language": "russian",
					},
				},
			},
		},
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type": "long",
				},
				"type_id": map[string]interface{}{
					"type": "long",
				},
				"title": map[string]interface{}{
					"type":     "text",
					"analyzer": "russian_analyzer",
					"fields": map[string]interface{}{
						"keyword": map[string]interface{}{
							"type":         "keyword",
							"ignore_above": 256,
						},
					},
				},
				"description": map[string]interface{}{
					"type":     "text",
					"analyzer": "russian_analyzer",
				},
				"base_price": map[string]interface{}{
					"type": "double",
				},
				"is_active": map[string]interface{}{
					"type": "boolean",
				},
				"created_at": map[string]interface{}{
					"type": "date",
				},
				"updated_at": map[string]interface{}{
					"type": "date",
				},
			},
		},
	}

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	createReq := esapi.IndicesCreateRequest{
		Index: c.config.Index,
		Body:  strings.NewReader(string(mappingJSON)),
	}

	createRes, err := createReq.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("failed to create index: %s", createRes.String())
	}

	slog.Info("Created Elasticsearch index", "index", c.config.Index)
	return nil
}

// IndexTour индексирует тур
func (c *ElasticsearchClient) IndexTour(ctx context.Context, doc *TourDocument) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	doc.UpdatedAt = time.Now()

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal tour: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      c.config.Index,
		DocumentID: strconv.FormatInt(doc.ID, 10),
		Body:       strings.NewReader(string(docJSON)),
		Refresh:    "wait_for",
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to index tour: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing error: %s", res.String())
	}

	return nil
}

// DeleteTour удаляет тур из индекса
func (c *ElasticsearchClient) DeleteTour(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{
		Index:      c.config.Index,
		DocumentID: strconv.FormatInt(id, 10),
		Refresh:    "wait_for",
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete error: %s", res.String())
	}

	return nil
}

// SearchTours выполняет поиск туров по названию/описанию и диапазону цены
func (c *ElasticsearchClient) SearchTours(ctx context.Context, query string, priceMin, priceMax *float64, onlyActive bool, page, pageSize int) ([]TourDocument, error) {
	searchQuery := c.buildSearchQuery(query, priceMin, priceMax, onlyActive)

	from := 0
	if page > 0 && pageSize > 0 {
		from = (page - 1) * pageSize
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	searchRequest := map[string]interface{}{
		"query": searchQuery,
		"sort":  c.buildSortQuery(query),
		"from":  from,
		"size":  pageSize,
	}

	searchJSON, err := json.Marshal(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{c.config.Index},
		Body:  strings.NewReader(string(searchJSON)),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var response struct {
		Hits struct {
			Hits []struct {
				Source TourDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	tours := make([]TourDocument, len(response.Hits.Hits))
	for i, hit := range response.Hits.Hits {
		tours[i] = hit.Source
	}

	return tours, nil
}

// buildSearchQuery строит поисковый запрос
func (c *ElasticsearchClient) buildSearchQuery(query string, priceMin, priceMax *float64, onlyActive bool) map[string]interface{} {
	mustQueries := []map[string]interface{}{}

	if query != "" {
		mustQueries = append(mustQueries, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"title^2", "description"},
				"analyzer":  "russian_analyzer",
				"fuzziness": "AUTO",
			},
		})
	}

	if priceMin != nil || priceMax != nil {
		priceRange := map[string]interface{}{}
		if priceMin != nil {
			priceRange["gte"] = *priceMin
		}
		if priceMax != nil {
			priceRange["lte"] = *priceMax
		}
		mustQueries = append(mustQueries, map[string]interface{}{
			"range": map[string]interface{}{
				"base_price": priceRange,
			},
		})
	}

	if onlyActive {
		mustQueries = append(mustQueries, map[string]interface{}{
			"term": map[string]interface{}{
				"is_active": true,
			},
		})
	}

	if len(mustQueries) == 0 {
		return map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	}

	return map[string]interface{}{
		"bool": map[string]interface{}{
			"must": mustQueries,
		},
	}
}

// buildSortQuery строит сортировку
func (c *ElasticsearchClient) buildSortQuery(query string) []map[string]interface{} {
	if query != "" {
		// Sort by relevance when searching
		return []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
			{"id": map[string]interface{}{"order": "asc"}},
		}
	}

	return []map[string]interface{}{
		{"id": map[string]interface{}{"order": "asc"}},
	}
}

// HealthCheck проверяет состояние Elasticsearch
func (c *ElasticsearchClient) HealthCheck(ctx context.Context) error {
	req := esapi.ClusterHealthRequest{
		WaitForStatus: "yellow",
		Timeout:       10 * time.Second,
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to check cluster health: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("cluster health error: %s", res.String())
	}

	return nil
}
