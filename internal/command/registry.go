package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// Registry maps command names to descriptors, plus alias names to canonical
// names. Aliases are resolved at lookup time and only one hop deep.
type Registry struct {
	commands map[string]*Descriptor
	aliases  map[string]string
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		commands: make(map[string]*Descriptor),
		aliases:  make(map[string]string),
		log:      log,
	}
}

// Add stores d under name, replacing whatever was there.
func (r *Registry) Add(name string, d *Descriptor) {
	name = normaliseName(name)
	if name == "" || d == nil {
		return
	}
	if _, exists := r.commands[name]; exists {
		r.log.Debug("command replaced", zap.String("name", name))
	}
	r.commands[name] = d
}

// Register adds d under its own name and records the given aliases for it.
func (r *Registry) Register(d *Descriptor, aliases ...string) {
	r.Add(d.Name(), d)
	for _, a := range aliases {
		r.Alias(a, d.Name())
	}
}

// Alias makes alias resolve to whatever is registered under canonical when
// the alias is looked up.
func (r *Registry) Alias(alias, canonical string) {
	alias = normaliseName(alias)
	canonical = normaliseName(canonical)
	if alias == "" || canonical == "" {
		return
	}
	r.aliases[alias] = canonical
	r.log.Debug("command alias", zap.String("alias", alias), zap.String("canonical", canonical))
}

func (r *Registry) Get(name string) (*Descriptor, bool) {
	name = normaliseName(name)
	if d, ok := r.commands[name]; ok {
		return d, true
	}
	canonical, ok := r.aliases[name]
	if !ok {
		return nil, false
	}
	d, ok := r.commands[canonical]
	return d, ok
}

// Names lists canonical command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AliasesOf lists the aliases that point at canonical, sorted.
func (r *Registry) AliasesOf(canonical string) []string {
	canonical = normaliseName(canonical)
	var out []string
	for alias, target := range r.aliases {
		if target == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Suggest returns the canonical name of the registered command or alias closest
// to name, if one is within edit distance.
func (r *Registry) Suggest(name string) (string, bool) {
	name = normaliseName(name)
	if name == "" {
		return "", false
	}
	type candidate struct {
		phrase    string
		canonical string
		dist      int
	}
	var cands []candidate
	consider := func(phrase, canonical string) {
		if _, ok := r.commands[canonical]; !ok {
			return
		}
		dist := levenshtein.ComputeDistance(name, phrase)
		if dist > levenshteinLimit(len(phrase)) {
			return
		}
		cands = append(cands, candidate{phrase: phrase, canonical: canonical, dist: dist})
	}
	for n := range r.commands {
		consider(n, n)
	}
	for a, c := range r.aliases {
		consider(a, c)
	}
	if len(cands) == 0 {
		return "", false
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].phrase < cands[j].phrase
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].canonical, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normaliseName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
