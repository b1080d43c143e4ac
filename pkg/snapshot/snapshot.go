package snapshot

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/sbml-kit/sbml-go/pkg/core"
)

// FormatVersion is the snapshot format written by this package.
const FormatVersion = 1

// ErrUnsupportedVersion marks a snapshot written in a format this
// package does not know.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// encMode is the CBOR encoder mode for snapshots. Deterministic
// encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for snapshots.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Rule kind discriminants on the wire.
const (
	ruleKindRate       uint8 = 1
	ruleKindAssignment uint8 = 2
)

type baseSnap struct {
	MetaID     string `cbor:"1,keyasint,omitempty"`
	ID         string `cbor:"2,keyasint,omitempty"`
	Name       string `cbor:"3,keyasint,omitempty"`
	SBOTerm    string `cbor:"4,keyasint,omitempty"`
	Annotation string `cbor:"5,keyasint,omitempty"`
}

type docSnap struct {
	Format  uint8      `cbor:"1,keyasint"`
	Level   uint       `cbor:"2,keyasint"`
	Version uint       `cbor:"3,keyasint"`
	Base    baseSnap   `cbor:"4,keyasint"`
	Model   *modelSnap `cbor:"5,keyasint,omitempty"`
}

type modelSnap struct {
	Base       baseSnap       `cbor:"1,keyasint"`
	Parameters []paramSnap    `cbor:"2,keyasint,omitempty"`
	Species    []speciesSnap  `cbor:"3,keyasint,omitempty"`
	Reactions  []reactionSnap `cbor:"4,keyasint,omitempty"`
	Rules      []ruleSnap     `cbor:"5,keyasint,omitempty"`
}

type paramSnap struct {
	Base     baseSnap `cbor:"1,keyasint"`
	Value    *float64 `cbor:"2,keyasint,omitempty"`
	Units    string   `cbor:"3,keyasint,omitempty"`
	Constant *bool    `cbor:"4,keyasint,omitempty"`
}

type speciesSnap struct {
	Base                 baseSnap `cbor:"1,keyasint"`
	Compartment          string   `cbor:"2,keyasint,omitempty"`
	InitialConcentration *float64 `cbor:"3,keyasint,omitempty"`
	BoundaryCondition    bool     `cbor:"4,keyasint,omitempty"`
	Constant             bool     `cbor:"5,keyasint,omitempty"`
}

type reactionSnap struct {
	Base       baseSnap  `cbor:"1,keyasint"`
	Reversible bool      `cbor:"2,keyasint,omitempty"`
	Reactants  []refSnap `cbor:"3,keyasint,omitempty"`
	Products   []refSnap `cbor:"4,keyasint,omitempty"`
}

type refSnap struct {
	Base          baseSnap `cbor:"1,keyasint"`
	Species       string   `cbor:"2,keyasint,omitempty"`
	Stoichiometry float64  `cbor:"3,keyasint,omitempty"`
	Constant      bool     `cbor:"4,keyasint,omitempty"`
}

type ruleSnap struct {
	Base     baseSnap `cbor:"1,keyasint"`
	Kind     uint8    `cbor:"2,keyasint"`
	Variable string   `cbor:"3,keyasint,omitempty"`
	Formula  string   `cbor:"4,keyasint,omitempty"`
}

// Encode serializes the document tree to snapshot bytes.
func Encode(doc *core.Document) ([]byte, error) {
	snap, err := docToSnap(doc)
	if err != nil {
		return nil, err
	}
	data, err := encMode.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode restores a document tree from snapshot bytes, rebuilding it
// through the core factories.
func Decode(data []byte) (*core.Document, error) {
	var snap docSnap
	if err := decMode.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Format != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Format)
	}
	return docFromSnap(&snap)
}

func baseToSnap(n *core.SBase) baseSnap {
	return baseSnap{
		MetaID:     n.MetaID(),
		ID:         n.ID(),
		Name:       n.Name(),
		SBOTerm:    n.SBOTerm(),
		Annotation: n.AnnotationString(),
	}
}

func baseFromSnap(s baseSnap, n *core.SBase) {
	if s.MetaID != "" {
		n.SetMetaID(s.MetaID)
	}
	n.SetID(s.ID)
	n.SetName(s.Name)
	n.SetSBOTerm(s.SBOTerm)
	if s.Annotation != "" {
		n.SetAnnotationString(s.Annotation)
	}
}

func docToSnap(doc *core.Document) (*docSnap, error) {
	snap := &docSnap{
		Format:  FormatVersion,
		Level:   doc.Level(),
		Version: doc.Version(),
		Base:    baseToSnap(&doc.SBase),
	}
	if m := doc.Model(); m != nil {
		ms, err := modelToSnap(m)
		if err != nil {
			return nil, err
		}
		snap.Model = ms
	}
	return snap, nil
}

func modelToSnap(m *core.Model) (*modelSnap, error) {
	snap := &modelSnap{Base: baseToSnap(&m.SBase)}

	for _, p := range m.Parameters() {
		ps := paramSnap{
			Base:  baseToSnap(&p.SBase),
			Units: p.Units(),
		}
		if p.IsSetValue() {
			v := p.Value()
			ps.Value = &v
		}
		if p.IsSetConstant() {
			c := p.Constant()
			ps.Constant = &c
		}
		snap.Parameters = append(snap.Parameters, ps)
	}

	for _, s := range m.SpeciesList() {
		ss := speciesSnap{
			Base:              baseToSnap(&s.SBase),
			Compartment:       s.Compartment(),
			BoundaryCondition: s.BoundaryCondition(),
			Constant:          s.Constant(),
		}
		if s.IsSetInitialConcentration() {
			c := s.InitialConcentration()
			ss.InitialConcentration = &c
		}
		snap.Species = append(snap.Species, ss)
	}

	for _, r := range m.Reactions() {
		rs := reactionSnap{
			Base:       baseToSnap(&r.SBase),
			Reversible: r.Reversible(),
		}
		for _, sr := range r.Reactants() {
			rs.Reactants = append(rs.Reactants, refToSnap(sr))
		}
		for _, sr := range r.Products() {
			rs.Products = append(rs.Products, refToSnap(sr))
		}
		snap.Reactions = append(snap.Reactions, rs)
	}

	for _, r := range m.Rules() {
		rs := ruleSnap{
			Base:     baseToSnap(&r.SBase),
			Variable: r.Variable(),
			Formula:  r.Formula(),
		}
		switch {
		case r.IsRate():
			rs.Kind = ruleKindRate
		case r.IsAssignment():
			rs.Kind = ruleKindAssignment
		default:
			return nil, fmt.Errorf("rule for %q has no known variant", r.Variable())
		}
		snap.Rules = append(snap.Rules, rs)
	}

	return snap, nil
}

func refToSnap(sr *core.SpeciesReference) refSnap {
	return refSnap{
		Base:          baseToSnap(&sr.SBase),
		Species:       sr.Species(),
		Stoichiometry: sr.Stoichiometry(),
		Constant:      sr.Constant(),
	}
}

func docFromSnap(snap *docSnap) (*core.Document, error) {
	doc := core.NewDocument(snap.Level, snap.Version)
	baseFromSnap(snap.Base, &doc.SBase)

	if snap.Model != nil {
		if err := modelFromSnap(snap.Model, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func modelFromSnap(snap *modelSnap, doc *core.Document) error {
	m := doc.CreateModel(snap.Base.ID)
	baseFromSnap(snap.Base, &m.SBase)

	for _, ps := range snap.Parameters {
		p := m.CreateParameter(ps.Base.ID)
		baseFromSnap(ps.Base, &p.SBase)
		if ps.Value != nil {
			p.SetValue(*ps.Value)
		}
		p.SetUnits(ps.Units)
		if ps.Constant != nil {
			p.SetConstant(*ps.Constant)
		}
	}

	for _, ss := range snap.Species {
		s := m.CreateSpecies(ss.Base.ID)
		baseFromSnap(ss.Base, &s.SBase)
		s.SetCompartment(ss.Compartment)
		if ss.InitialConcentration != nil {
			s.SetInitialConcentration(*ss.InitialConcentration)
		}
		s.SetBoundaryCondition(ss.BoundaryCondition)
		s.SetConstant(ss.Constant)
	}

	for _, rs := range snap.Reactions {
		r := m.CreateReaction(rs.Base.ID)
		baseFromSnap(rs.Base, &r.SBase)
		r.SetReversible(rs.Reversible)
		for _, refs := range rs.Reactants {
			refFromSnap(refs, r.CreateReactant())
		}
		for _, refs := range rs.Products {
			refFromSnap(refs, r.CreateProduct())
		}
	}

	for _, rs := range snap.Rules {
		var r *core.Rule
		switch rs.Kind {
		case ruleKindRate:
			r = &m.CreateRateRule().Rule
		case ruleKindAssignment:
			r = &m.CreateAssignmentRule().Rule
		default:
			return fmt.Errorf("unknown rule kind %d in snapshot", rs.Kind)
		}
		baseFromSnap(rs.Base, &r.SBase)
		r.SetVariable(rs.Variable)
		r.SetFormula(rs.Formula)
	}

	return nil
}

func refFromSnap(s refSnap, sr *core.SpeciesReference) {
	baseFromSnap(s.Base, &sr.SBase)
	sr.SetSpecies(s.Species)
	sr.SetStoichiometry(s.Stoichiometry)
	sr.SetConstant(s.Constant)
}
