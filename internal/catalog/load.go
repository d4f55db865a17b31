package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml data/news.xml
var dataFS embed.FS

const (
	embeddedCatalog = "data/catalog.yaml"
	embeddedNews    = "data/news.xml"
)

// Default builds the catalog from the data files compiled into the binary.
func Default() (*Catalog, error) {
	return Load("", "")
}

// Load builds a catalog from the catalog document at catalogPath and the RSS
// news feed at newsPath. An empty path selects the embedded file.
func Load(catalogPath, newsPath string) (*Catalog, error) {
	data, err := readCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	news, err := readNews(newsPath)
	if err != nil {
		return nil, err
	}
	data.News = news

	return New(data)
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(r io.Reader) (Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return Data{}, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return data, nil
}

func readCatalog(path string) (Data, error) {
	raw, source, err := readSource(path, embeddedCatalog)
	if err != nil {
		return Data{}, err
	}
	data, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Data{}, NewLoadError(source, "decoding catalog", err)
	}
	return data, nil
}

func readNews(path string) ([]domain.NewsItem, error) {
	raw, source, err := readSource(path, embeddedNews)
	if err != nil {
		return nil, err
	}
	news, err := ParseNews(bytes.NewReader(raw))
	if err != nil {
		return nil, NewLoadError(source, "decoding news feed", err)
	}
	return news, nil
}

func readSource(path, embedded string) ([]byte, string, error) {
	if path == "" {
		raw, err := dataFS.ReadFile(embedded)
		if err != nil {
			return nil, embedded, NewLoadError(embedded, "reading embedded file", err)
		}
		return raw, embedded, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, path, NewLoadError(path, "reading file", err)
	}
	return raw, path, nil
}
