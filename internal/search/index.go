package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/Skotchmaster/shop_api/internal/models"
)

const maxHits = 1000

// ProductIndex mirrors the product table into an Elasticsearch index and
// answers name searches from it.
type ProductIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewProductIndex(es *elasticsearch.Client, index string) *ProductIndex {
	return &ProductIndex{ES: es, Index: index}
}

func (p *ProductIndex) IndexProduct(ctx context.Context, prod models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(prod); err != nil {
		return fmt.Errorf("encode product: %w", err)
	}

	res, err := p.ES.Index(
		p.Index,
		&buf,
		p.ES.Index.WithContext(ctx),
		p.ES.Index.WithDocumentID(strconv.FormatUint(uint64(prod.ID), 10)),
		p.ES.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("index product %d: %w", prod.ID, err)
	}
	return checkResponse(res, "index product")
}

func (p *ProductIndex) DeleteProduct(ctx context.Context, id uint) error {
	res, err := p.ES.Delete(
		p.Index,
		strconv.FormatUint(uint64(id), 10),
		p.ES.Delete.WithContext(ctx),
		p.ES.Delete.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil
	}
	return checkResponse(res, "delete product")
}

func (p *ProductIndex) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(searchBody(q)); err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}

	res, err := p.ES.Search(
		p.ES.Search.WithContext(ctx),
		p.ES.Search.WithIndex(p.Index),
		p.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search products: %s: %s", res.Status(), body)
	}
	return decodeHits(res.Body)
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func searchBody(q string) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"wildcard": map[string]any{
				"name.keyword": map[string]any{
					"value":            "*" + wildcardEscaper.Replace(q) + "*",
					"case_insensitive": true,
				},
			},
		},
		"sort": []any{map[string]any{"id": "asc"}},
		"size": maxHits,
	}
}

func decodeHits(r io.Reader) ([]models.Product, error) {
	var body struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	prods := make([]models.Product, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		prods = append(prods, hit.Source)
	}
	return prods, nil
}

func checkResponse(res *esapi.Response, op string) error {
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%s: %s: %s", op, res.Status(), body)
	}
	return nil
}
