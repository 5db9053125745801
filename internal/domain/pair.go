package domain

import "sync"

// Record is the last known value and unit on one side of a pair.
type Record struct {
	Unit  Unit    `json:"unit"`
	Value float64 `json:"value"`
}

// Conversion is the observable state of a pair. Change notifications use the
// same shape, with From set to the side that was edited.
type Conversion struct {
	From Record `json:"from"`
	To   Record `json:"to"`
}

// PairConfig is the session configuration of a Pair.
type PairConfig struct {
	Category  Category
	Precision int
	FromUnit  Unit
	ToUnit    Unit
}

type subscription struct {
	id int
	fn func(Conversion)
}

// Pair keeps a from/to value pair consistent under edits from either side.
//
// An edit that does not change the stored value of its side is dropped, so a
// UI echoing the recomputed value back never loops. Every accepted edit
// produces exactly one notification, delivered in edit order.
type Pair struct {
	conv *Converter

	mu        sync.Mutex
	category  Category
	precision int
	from      Record
	to        Record
	subs      []subscription
	nextID    int

	// editMu serializes edits together with their notifications. It is
	// taken before mu, and mu is released before handlers run, so a handler
	// may call Value.
	editMu sync.Mutex
}

// NewPair starts a session with both values at 0. A nil converter gets a
// fresh one with the built-in tables.
func NewPair(conv *Converter, cfg PairConfig) *Pair {
	if conv == nil {
		conv = NewConverter()
	}
	return &Pair{
		conv:      conv,
		category:  cfg.Category,
		precision: ClampPrecision(cfg.Precision),
		from:      Record{Unit: cfg.FromUnit},
		to:        Record{Unit: cfg.ToUnit},
	}
}

// Converter returns the converter backing the pair.
func (p *Pair) Converter() *Converter { return p.conv }

// EditFrom applies a raw value typed on the from side. Unparseable input
// counts as 0. It reports whether the state changed.
func (p *Pair) EditFrom(raw string) bool {
	v, _ := ParseValue(raw)

	p.editMu.Lock()
	defer p.editMu.Unlock()

	p.mu.Lock()
	if v == p.from.Value {
		p.mu.Unlock()
		return false
	}
	p.from.Value = v
	p.to.Value = p.conv.Convert(v, p.from.Unit, p.to.Unit, p.category, p.precision)
	change, subs := Conversion{From: p.from, To: p.to}, p.snapshotSubs()
	p.mu.Unlock()

	notify(subs, change)
	return true
}

// EditTo applies a raw value typed on the to side and recomputes from. The
// notification carries the to side as From.
func (p *Pair) EditTo(raw string) bool {
	v, _ := ParseValue(raw)

	p.editMu.Lock()
	defer p.editMu.Unlock()

	p.mu.Lock()
	if v == p.to.Value {
		p.mu.Unlock()
		return false
	}
	p.to.Value = v
	p.from.Value = p.conv.Convert(v, p.to.Unit, p.from.Unit, p.category, p.precision)
	change, subs := Conversion{From: p.to, To: p.from}, p.snapshotSubs()
	p.mu.Unlock()

	notify(subs, change)
	return true
}

// Refresh recomputes the to side from the stored from value, for instance
// after a unit change. It notifies only when the to value moved.
func (p *Pair) Refresh() bool {
	p.editMu.Lock()
	defer p.editMu.Unlock()

	p.mu.Lock()
	to := p.conv.Convert(p.from.Value, p.from.Unit, p.to.Unit, p.category, p.precision)
	if to == p.to.Value {
		p.mu.Unlock()
		return false
	}
	p.to.Value = to
	change, subs := Conversion{From: p.from, To: p.to}, p.snapshotSubs()
	p.mu.Unlock()

	notify(subs, change)
	return true
}

// Value returns the current state in from/to orientation.
func (p *Pair) Value() Conversion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Conversion{From: p.from, To: p.to}
}

// Category returns the current category.
func (p *Pair) Category() Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.category
}

// Precision returns the current precision.
func (p *Pair) Precision() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.precision
}

// SetUnits changes the units of both sides without recomputing. An empty unit
// leaves that side as is.
func (p *Pair) SetUnits(from, to Unit) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if from != "" {
		p.from.Unit = from
	}
	if to != "" {
		p.to.Unit = to
	}
}

// SetCategory switches the conversion domain without recomputing.
func (p *Pair) SetCategory(cat Category) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.category = cat
}

// SetPrecision changes the rounding used by later edits.
func (p *Pair) SetPrecision(precision int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.precision = ClampPrecision(precision)
}

// InstallFactors replaces the factor table of the current category.
func (p *Pair) InstallFactors(table FactorTable) bool {
	return p.conv.InstallFactors(p.Category(), table)
}

// Factors returns the factor table of the current category.
func (p *Pair) Factors() FactorTable {
	return p.conv.Factors(p.Category())
}

// Subscribe registers fn for change notifications. Handlers run on the
// editing goroutine and must not edit the same pair.
func (p *Pair) Subscribe(fn func(Conversion)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			for i, s := range p.subs {
				if s.id == id {
					p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (p *Pair) snapshotSubs() []subscription {
	if len(p.subs) == 0 {
		return nil
	}
	out := make([]subscription, len(p.subs))
	copy(out, p.subs)
	return out
}

func notify(subs []subscription, c Conversion) {
	for _, s := range subs {
		s.fn(c)
	}
}
