package mount

import "cmp"

// Param is a named, typed setting.
//
// Setting fails when the option is locked, invisible, or the value is not
// accepted by the validator; the old value remains in every failure case.
type Param[T comparable] struct {
	name        string
	description string
	value       T
	visible     bool
	locked      bool
	accept      func(T) bool
}

// NewParam returns a visible, unlocked setting that accepts every value.
func NewParam[T comparable](name, description string, value T) *Param[T] {
	return &Param[T]{name: name, description: description, value: value, visible: true}
}

// NewLockedParam returns a setting locked to value.
func NewLockedParam[T comparable](name, description string, value T) *Param[T] {
	p := NewParam(name, description, value)
	p.locked = true
	return p
}

// Name returns the display name.
func (p *Param[T]) Name() string { return p.name }

// Description returns the help text.
func (p *Param[T]) Description() string { return p.description }

// Get returns the current value.
func (p *Param[T]) Get() T { return p.value }

// Set assigns value and reports whether it was accepted.
func (p *Param[T]) Set(value T) bool {
	if p.locked || !p.IsValid(value) {
		return false
	}
	p.value = value
	return true
}

// IsValid reports whether value would be accepted by Set. A locked setting
// only accepts its current value.
func (p *Param[T]) IsValid(value T) bool {
	if !p.visible {
		return false
	}
	if p.locked {
		return value == p.value
	}
	return p.accept == nil || p.accept(value)
}

// Visible reports whether the setting is supported at all.
func (p *Param[T]) Visible() bool { return p.visible }

// SetVisible turns support for the setting on or off. Invisible settings
// refuse every write.
func (p *Param[T]) SetVisible(visible bool) { p.visible = visible }

// Locked reports whether the setting is locked.
func (p *Param[T]) Locked() bool { return p.locked }

// Lock sets value and locks the setting. On failure the setting is locked
// with its old value.
func (p *Param[T]) Lock(value T) bool {
	p.locked = false
	ok := p.Set(value)
	p.locked = true
	return ok
}

// SetLocked locks or unlocks the setting keeping the current value.
func (p *Param[T]) SetLocked(locked bool) { p.locked = locked }

// RangeParam is a setting limited to [Min, Max].
type RangeParam[T cmp.Ordered] struct {
	*Param[T]
	min, max T
}

// NewRangeParam returns a setting accepting values in [lo, hi]. The
// initial value is clamped into the range.
func NewRangeParam[T cmp.Ordered](name, description string, value, lo, hi T) *RangeParam[T] {
	r := &RangeParam[T]{Param: NewParam(name, description, value)}
	r.accept = func(v T) bool { return v >= r.min && v <= r.max }
	r.SetRange(lo, hi)
	return r
}

// Min returns the lower bound.
func (r *RangeParam[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r *RangeParam[T]) Max() T { return r.max }

// SetRange replaces the bounds and clamps the current value. With lo > hi
// no value is accepted.
func (r *RangeParam[T]) SetRange(lo, hi T) {
	r.visible = true
	r.min, r.max = lo, hi
	r.value = min(max(r.value, lo), hi)
}

// EnumParam is a setting over a small enumeration. Every value has a tag
// used in configuration files; values can be removed from the valid set at
// runtime.
type EnumParam[E ~int] struct {
	*Param[E]
	tags  []string
	valid []bool
}

// NewEnumParam returns a setting whose values are the indices of tags.
func NewEnumParam[E ~int](name, description string, value E, tags []string) *EnumParam[E] {
	e := &EnumParam[E]{
		Param: NewParam(name, description, value),
		tags:  tags,
		valid: make([]bool, len(tags)),
	}
	for i := range e.valid {
		e.valid[i] = true
	}
	e.accept = func(v E) bool {
		return int(v) >= 0 && int(v) < len(e.valid) && e.valid[v]
	}
	return e
}

// Tags returns the configuration tags in value order.
func (e *EnumParam[E]) Tags() []string {
	return e.tags
}

// Tag returns the tag of the current value.
func (e *EnumParam[E]) Tag() string {
	if v := int(e.value); v >= 0 && v < len(e.tags) {
		return e.tags[v]
	}
	return ""
}

// SetFromString sets the value whose tag equals tag. It reports false when
// no tag matches or Set refuses the value.
func (e *EnumParam[E]) SetFromString(tag string) bool {
	for i, t := range e.tags {
		if t == tag {
			return e.Set(E(i))
		}
	}
	return false
}

// AddToValidSet allows value.
func (e *EnumParam[E]) AddToValidSet(value E) {
	if int(value) >= 0 && int(value) < len(e.valid) {
		e.valid[value] = true
	}
}

// RemoveFromValidSet disallows value. When the current value becomes
// invalid it moves to the first valid one.
func (e *EnumParam[E]) RemoveFromValidSet(value E) {
	if int(value) >= 0 && int(value) < len(e.valid) {
		e.valid[value] = false
	}
	if e.visible && !e.locked && !e.IsValid(e.value) {
		e.value = e.firstValid()
	}
}

func (e *EnumParam[E]) firstValid() E {
	for i, ok := range e.valid {
		if ok {
			return E(i)
		}
	}
	var zero E
	return zero
}
