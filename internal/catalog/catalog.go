package catalog

// Package catalog holds the immutable set of constraints and modes that the
// prompt renderer draws from. Entries are declared in a fixed order; rendering
// follows that order, not the order ids were selected in.

const (
	LocaleEN = "en"
	LocaleZH = "zh"
)

// Constraint is a single reusable instruction fragment.
type Constraint struct {
	ID             string
	Labels         map[string]string
	Prompt         string
	NegativePrompt string
}

// Label resolves the constraint label for a locale.
// Fallback order: requested locale, English, first available.
func (c Constraint) Label(locale string) string {
	return resolveLabel(c.Labels, locale)
}

// Mode is a task-type preset that recommends a constraint subset.
type Mode struct {
	ID                       string
	Labels                   map[string]string
	RecommendedConstraintIDs []string
}

func (m Mode) Label(locale string) string {
	return resolveLabel(m.Labels, locale)
}

// Catalog is an immutable lookup over constraints and modes.
type Catalog struct {
	constraints []Constraint
	modes       []Mode

	constraintByID map[string]Constraint
	modeByID       map[string]Mode
	defaultModeID  string
}

// New builds a catalog. The first mode is the default used when an unknown
// mode id is requested.
func New(constraints []Constraint, modes []Mode) *Catalog {
	c := &Catalog{
		constraints:    constraints,
		modes:          modes,
		constraintByID: make(map[string]Constraint, len(constraints)),
		modeByID:       make(map[string]Mode, len(modes)),
	}
	for _, con := range constraints {
		c.constraintByID[con.ID] = con
	}
	for _, m := range modes {
		c.modeByID[m.ID] = m
	}
	if len(modes) > 0 {
		c.defaultModeID = modes[0].ID
	}
	return c
}

// Constraints returns all constraints in declaration order.
func (c *Catalog) Constraints() []Constraint {
	return c.constraints
}

// Modes returns all modes in declaration order.
func (c *Catalog) Modes() []Mode {
	return c.modes
}

func (c *Catalog) Constraint(id string) (Constraint, bool) {
	con, ok := c.constraintByID[id]
	return con, ok
}

// Mode resolves a mode id, falling back to the default mode when unknown.
func (c *Catalog) Mode(id string) Mode {
	if m, ok := c.modeByID[id]; ok {
		return m
	}
	return c.modeByID[c.defaultModeID]
}

// HasMode reports whether the id names a real mode (no fallback).
func (c *Catalog) HasMode(id string) bool {
	_, ok := c.modeByID[id]
	return ok
}

func resolveLabel(labels map[string]string, locale string) string {
	if v, ok := labels[locale]; ok {
		return v
	}
	if v, ok := labels[LocaleEN]; ok {
		return v
	}
	for _, v := range labels {
		return v
	}
	return ""
}

// NormalizeLocale maps any unsupported locale to English.
func NormalizeLocale(locale string) string {
	if locale == LocaleZH {
		return LocaleZH
	}
	return LocaleEN
}
