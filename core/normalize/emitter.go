package normalize

import "strings"

type listKind int

const (
	unordered listKind = iota
	ordered
)

// emitter holds the mutable state of one conversion run.
type emitter struct {
	out     strings.Builder
	pending []string

	// currentTag is set on every start tag and cleared on every end tag.
	currentTag string
	inCode     bool
	inPre      bool

	lists   []listKind
	table   table
	details details
}

type details struct {
	active    bool
	inSummary bool
	title     string
	content   []string
}

func newEmitter() *emitter {
	return &emitter{}
}

func (e *emitter) write(s string) {
	e.out.WriteString(s)
}

// flush appends the pending inline text, whitespace-normalized, and clears it.
func (e *emitter) flush() {
	if len(e.pending) == 0 {
		return
	}
	if text := collapseSpace(strings.Join(e.pending, " ")); text != "" {
		e.write(text)
	}
	e.pending = e.pending[:0]
}

func (e *emitter) start(t tagToken) {
	switch t.name {
	case "h2", "h3", "h4":
		e.flush()
		e.write("\n" + strings.Repeat("#", headingLevel(t.name)) + " ")
	case "p":
		e.flush()
	case "strong":
		e.flush()
		e.write("**")
	case "em":
		e.flush()
		e.write("*")
	case "a":
		// Only CTA anchors keep their target, via the cta-button rewrite rule.
		e.flush()
		e.write("[")
	case "ul":
		e.flush()
		e.lists = append(e.lists, unordered)
	case "ol":
		e.flush()
		e.lists = append(e.lists, ordered)
	case "li":
		e.flush()
		if n := len(e.lists); n > 0 && e.lists[n-1] == ordered {
			e.write("\n1. ")
		} else {
			e.write("\n- ")
		}
	case "br":
		e.flush()
		e.write("\n")
	case "code":
		e.flush()
		e.write("`")
		e.inCode = true
	case "pre":
		e.flush()
		e.inPre = true
		e.write("\n```\n")
	case "table":
		e.flush()
		e.table.reset()
	case "thead":
		e.table.inHead = true
	case "tr":
		e.table.row = nil
	case "details":
		e.flush()
		e.details = details{active: true}
	case "summary":
		e.details.inSummary = true
	}
	e.currentTag = t.name
}

func (e *emitter) end(t tagToken) {
	switch t.name {
	case "h2", "h3", "h4":
		e.flush()
		e.write("\n")
	case "p":
		e.flush()
		e.write("\n\n")
	case "strong":
		e.flush()
		e.write("**")
	case "em":
		e.flush()
		e.write("*")
	case "a":
		e.flush()
		e.write("]")
	case "ul", "ol":
		e.flush()
		if n := len(e.lists); n > 0 {
			e.lists = e.lists[:n-1]
		}
		e.write("\n")
	case "code":
		e.flush()
		e.write("`")
		e.inCode = false
	case "pre":
		e.flush()
		e.write("\n```\n")
		e.inPre = false
	case "table":
		e.flush()
		e.write(e.table.render())
		e.table.inHead = false
	case "thead":
		e.table.inHead = false
	case "tr":
		e.table.closeRow()
	case "details":
		e.flush()
		if e.details.title != "" {
			e.write("\n#### " + e.details.title + "\n\n")
		}
		for _, c := range e.details.content {
			e.write(c)
		}
		e.details = details{}
	case "summary":
		e.flush()
		e.details.inSummary = false
	}
	e.currentTag = ""
}

func (e *emitter) text(data string) {
	data = strings.TrimSpace(data)
	if data == "" {
		return
	}

	switch {
	case e.details.inSummary:
		if e.details.title == "" {
			e.details.title = data
		}
	case e.details.active:
		e.details.content = append(e.details.content, data+"\n\n")
	case e.currentTag == "th" || e.currentTag == "td":
		e.table.row = append(e.table.row, collapseSpace(data))
	case e.inCode || e.inPre:
		e.write(data)
	default:
		e.pending = append(e.pending, data)
	}
}

// finish flushes remaining text and returns the raw Markdown.
func (e *emitter) finish() string {
	e.flush()
	return e.out.String()
}

func headingLevel(name string) int {
	return int(name[1] - '0')
}
