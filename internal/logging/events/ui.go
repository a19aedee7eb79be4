package events

import "github.com/shelfctl/shelfctl/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type FormTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Form   = FormTracer{}
)

func (UITracer) ViewSwitch(mode string) {
	logging.Trace("ui.view-switch", map[string]interface{}{"mode": mode})
}

func (UITracer) PageChange(page, totalPages int) {
	logging.Trace("ui.page-change", map[string]interface{}{"page": page, "totalPages": totalPages})
}

func (UITracer) PageRejected(page int) {
	logging.Trace("ui.page-rejected", map[string]interface{}{"page": page})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (FilterTracer) Pending(query string) {
	logging.Trace("filter.pending", map[string]interface{}{"query": query})
}

func (FilterTracer) Applied(query string, matches int) {
	logging.Trace("filter.apply", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FormTracer) Open(mode, id string) {
	logging.Trace("form.open", map[string]interface{}{"mode": mode, "id": id})
}

func (FormTracer) Cancel(mode string) {
	logging.Trace("form.cancel", map[string]interface{}{"mode": mode})
}

func (FormTracer) Rejected(fields int) {
	logging.Trace("form.rejected", map[string]interface{}{"fields": fields})
}

func (FormTracer) Submitted(id, name string) {
	logging.Trace("form.submit", map[string]interface{}{"id": id, "name": name})
}
