package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/recordkit/recordkit/internal/schema"
	"github.com/recordkit/recordkit/internal/variant"
)

// Loaded is one record type built from a definition file, together with
// the generation options its document declared
type Loaded struct {
	Type    *schema.Type
	Options variant.Options
	Table   string
	File    string
}

// Loader builds record-type descriptors from definition documents and
// registers their field rules
type Loader struct {
	registry *schema.Registry
	log      *zap.Logger
}

// New creates a new Loader. A nil logger disables logging.
func New(registry *schema.Registry, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{registry: registry, log: log}
}

type parsedDoc struct {
	doc  Document
	file string
}

// Load reads every file, builds the type descriptors with their parent
// links, and registers all field rules. The result is sorted by record
// name so repeated runs are deterministic.
func (l *Loader) Load(paths []string) ([]*Loaded, error) {
	var docs []parsedDoc
	for _, path := range paths {
		parsed, err := l.readFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, parsed...)
	}

	// Pass 1: descriptors, so extends can reference any record in any file
	types := make(map[string]*schema.Type, len(docs))
	files := make(map[string]string, len(docs))
	for _, p := range docs {
		if p.doc.Record == "" {
			return nil, fmt.Errorf("%s: definition document has no record name", p.file)
		}
		if _, exists := types[p.doc.Record]; exists {
			return nil, fmt.Errorf("%s: record %s is already defined in %s", p.file, p.doc.Record, files[p.doc.Record])
		}
		types[p.doc.Record] = schema.NewType(p.doc.Record, nil)
		files[p.doc.Record] = p.file
	}

	for _, p := range docs {
		if p.doc.Extends == "" {
			continue
		}
		parent, ok := types[p.doc.Extends]
		if !ok {
			return nil, fmt.Errorf("%s: record %s extends unknown record %s", p.file, p.doc.Record, p.doc.Extends)
		}
		types[p.doc.Record].Parent = parent
	}

	if err := detectCycles(types, files); err != nil {
		return nil, err
	}

	// Pass 2: field rules
	var result []*Loaded
	for _, p := range docs {
		t := types[p.doc.Record]
		for _, f := range p.doc.Fields {
			rule, err := buildRule(f)
			if err != nil {
				return nil, fmt.Errorf("%s: record %s: %w", p.file, p.doc.Record, err)
			}
			if err := l.registry.Annotate(t, rule); err != nil {
				return nil, fmt.Errorf("%s: record %s: %w", p.file, p.doc.Record, err)
			}
		}

		l.log.Debug("loaded record definition",
			zap.String("record", p.doc.Record),
			zap.String("file", p.file),
			zap.Int("fields", len(p.doc.Fields)),
		)

		result = append(result, &Loaded{
			Type: t,
			Options: variant.Options{
				OmitFromCreate:  p.doc.OmitFromCreate,
				OmitFromUpdate:  p.doc.OmitFromUpdate,
				IdentifierField: p.doc.Identifier,
			},
			Table: p.doc.Table,
			File:  p.file,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Type.Name < result[j].Type.Name
	})
	return result, nil
}

// readFile decodes every YAML document in one file
func (l *Loader) readFile(path string) ([]parsedDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition file: %w", err)
	}
	defer f.Close()

	var docs []parsedDoc
	decoder := yaml.NewDecoder(f)
	for {
		var doc Document
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: failed to parse definition: %w", path, err)
		}
		docs = append(docs, parsedDoc{doc: doc, file: path})
	}
	return docs, nil
}

// detectCycles rejects extends chains that loop back on themselves
func detectCycles(types map[string]*schema.Type, files map[string]string) error {
	for name, t := range types {
		seen := map[*schema.Type]bool{t: true}
		for p := t.Parent; p != nil; p = p.Parent {
			if seen[p] {
				return fmt.Errorf("%s: record %s has a circular extends chain", files[name], name)
			}
			seen[p] = true
		}
	}
	return nil
}
