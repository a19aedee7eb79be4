package events

import "github.com/shelfctl/shelfctl/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Add(id, name string) {
	logging.Trace("catalog.add", map[string]interface{}{"id": id, "name": name})
}

func (CatalogTracer) Update(id, name string) {
	logging.Trace("catalog.update", map[string]interface{}{"id": id, "name": name})
}

func (CatalogTracer) Delete(id, name string) {
	logging.Trace("catalog.delete", map[string]interface{}{"id": id, "name": name})
}

func (CatalogTracer) NotFound(op, id string) {
	logging.Trace("catalog.not-found", map[string]interface{}{"op": op, "id": id})
}
