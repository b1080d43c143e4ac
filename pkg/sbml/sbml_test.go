package sbml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbml-kit/sbml-go/pkg/annotation"
	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/log"
	"github.com/sbml-kit/sbml-go/pkg/sbml"
)

type kineticsMeta struct {
	Solver string  `xml:"solver"`
	Tol    float64 `xml:"tol"`
}

func newModel(t *testing.T) (*sbml.SBMLDocument, *sbml.Model) {
	t.Helper()
	doc := sbml.DefaultDocument()
	m, err := doc.CreateModel("cell")
	require.NoError(t, err)
	return doc, m
}

func TestDocumentDefaults(t *testing.T) {
	doc := sbml.DefaultDocument()

	level, err := doc.Level()
	require.NoError(t, err)
	version, err := doc.Version()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultLevel, level)
	assert.Equal(t, core.DefaultVersion, version)

	_, err = doc.Model()
	assert.ErrorIs(t, err, sbml.ErrNotFound)
}

func TestDocumentModelReplacement(t *testing.T) {
	doc, _ := newModel(t)

	m2, err := doc.CreateModel("second")
	require.NoError(t, err)

	got, err := doc.Model()
	require.NoError(t, err)
	gotID, err := got.ID()
	require.NoError(t, err)
	m2ID, err := m2.ID()
	require.NoError(t, err)
	assert.Equal(t, m2ID, gotID)
	assert.Equal(t, "second", gotID)
}

func TestMetaIDAssignedOnCreate(t *testing.T) {
	_, m := newModel(t)

	p, err := m.CreateParameter("k1")
	require.NoError(t, err)
	q, err := m.CreateParameter("k2")
	require.NoError(t, err)

	pm, err := p.MetaID()
	require.NoError(t, err)
	qm, err := q.MetaID()
	require.NoError(t, err)
	assert.NotEmpty(t, pm)
	assert.NotEmpty(t, qm)
	assert.NotEqual(t, pm, qm)
}

func TestParameterDefaults(t *testing.T) {
	_, m := newModel(t)

	p, err := m.CreateParameter("k1")
	require.NoError(t, err)

	_, ok, err := p.Value()
	require.NoError(t, err)
	assert.False(t, ok)

	constant, err := p.Constant()
	require.NoError(t, err)
	assert.True(t, constant)

	isSet, err := p.IsSetConstant()
	require.NoError(t, err)
	assert.False(t, isSet)
}

func TestParameterConstantReadsFlagValue(t *testing.T) {
	_, m := newModel(t)

	p, err := m.CreateParameter("k1")
	require.NoError(t, err)
	require.NoError(t, p.SetConstant(false))

	constant, err := p.Constant()
	require.NoError(t, err)
	assert.False(t, constant)

	isSet, err := p.IsSetConstant()
	require.NoError(t, err)
	assert.True(t, isSet)
}

func TestParameterBuilder(t *testing.T) {
	_, m := newModel(t)

	p, err := sbml.NewParameterBuilder(m, "k1").
		Value(0.1).
		Units("per_second").
		Constant(true).
		Name("rate constant").
		Build()
	require.NoError(t, err)

	v, ok, err := p.Value()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.1, v)

	units, err := p.Units()
	require.NoError(t, err)
	assert.Equal(t, "per_second", units)

	name, err := p.Name()
	require.NoError(t, err)
	assert.Equal(t, "rate constant", name)
}

func TestParameterLookup(t *testing.T) {
	_, m := newModel(t)

	_, err := m.CreateParameter("k1")
	require.NoError(t, err)

	p, err := m.Parameter("k1")
	require.NoError(t, err)
	id, err := p.ID()
	require.NoError(t, err)
	assert.Equal(t, "k1", id)

	_, err = m.Parameter("nope")
	assert.ErrorIs(t, err, sbml.ErrNotFound)
}

func TestSpeciesBuilder(t *testing.T) {
	_, m := newModel(t)

	s, err := sbml.NewSpeciesBuilder(m, "glucose").
		Compartment("cytosol").
		InitialConcentration(5.5).
		BoundaryCondition(false).
		Constant(false).
		Build()
	require.NoError(t, err)

	compartment, err := s.Compartment()
	require.NoError(t, err)
	assert.Equal(t, "cytosol", compartment)

	c, ok, err := s.InitialConcentration()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.5, c)
}

func TestRuleTypeProbing(t *testing.T) {
	_, m := newModel(t)

	rate, err := m.CreateRateRule("glucose", "-k1 * glucose")
	require.NoError(t, err)
	assign, err := m.CreateAssignmentRule("total", "glucose + g6p")
	require.NoError(t, err)

	rt, err := rate.Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.RuleTypeRate, rt)

	at, err := assign.Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.RuleTypeAssignment, at)

	variable, err := rate.Variable()
	require.NoError(t, err)
	assert.Equal(t, "glucose", variable)

	formula, err := assign.Formula()
	require.NoError(t, err)
	assert.Equal(t, "glucose + g6p", formula)
}

func TestRulesListedInInsertionOrder(t *testing.T) {
	_, m := newModel(t)

	_, err := m.CreateAssignmentRule("x", "1")
	require.NoError(t, err)
	_, err = m.CreateRateRule("y", "2")
	require.NoError(t, err)

	rules, err := m.Rules()
	require.NoError(t, err)
	require.Len(t, rules, 2)

	t0, err := rules[0].Type()
	require.NoError(t, err)
	t1, err := rules[1].Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.RuleTypeAssignment, t0)
	assert.Equal(t, sbml.RuleTypeRate, t1)
}

func TestRuleLookupByVariable(t *testing.T) {
	_, m := newModel(t)

	_, err := m.CreateRateRule("glucose", "-k1 * glucose")
	require.NoError(t, err)

	r, err := m.Rule("glucose")
	require.NoError(t, err)
	formula, err := r.Formula()
	require.NoError(t, err)
	assert.Equal(t, "-k1 * glucose", formula)

	_, err = m.Rule("nope")
	assert.ErrorIs(t, err, sbml.ErrNotFound)
}

func TestReactionReferences(t *testing.T) {
	_, m := newModel(t)

	r, err := m.CreateReaction("uptake")
	require.NoError(t, err)
	require.NoError(t, r.SetReversible(true))

	re, err := r.CreateReactant("glucose")
	require.NoError(t, err)
	pr, err := r.CreateProduct("g6p")
	require.NoError(t, err)

	species, err := re.Species()
	require.NoError(t, err)
	assert.Equal(t, "glucose", species)

	stoich, err := re.Stoichiometry()
	require.NoError(t, err)
	assert.Equal(t, 1.0, stoich)

	constant, err := re.Constant()
	require.NoError(t, err)
	assert.True(t, constant)

	rt, err := re.Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.SpeciesReferenceTypeReactant, rt)

	pt, err := pr.Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.SpeciesReferenceTypeProduct, pt)
}

func TestReactionBuilder(t *testing.T) {
	_, m := newModel(t)

	r, err := sbml.NewReactionBuilder(m, "uptake").
		Reversible(true).
		Reactant("glucose", 2).
		Product("g6p", 1).
		Build()
	require.NoError(t, err)

	reactants, err := r.Reactants()
	require.NoError(t, err)
	require.Len(t, reactants, 1)

	stoich, err := reactants[0].Stoichiometry()
	require.NoError(t, err)
	assert.Equal(t, 2.0, stoich)
}

func TestSpeciesReferenceUpcastSharesBorrowState(t *testing.T) {
	_, m := newModel(t)

	r, err := m.CreateReaction("uptake")
	require.NoError(t, err)
	ref, err := r.CreateReactant("glucose")
	require.NoError(t, err)

	// An exclusive borrow on the concrete node must block access through
	// the base view, since both address the same node.
	guard, err := ref.Handle().BorrowMut()
	require.NoError(t, err)

	err = ref.Simple().Read(func(*core.SimpleSpeciesReference) error { return nil })
	assert.ErrorIs(t, err, borrow.ErrBorrowConflict)

	guard.Release()
	err = ref.Simple().Read(func(*core.SimpleSpeciesReference) error { return nil })
	assert.NoError(t, err)
}

func TestFacadeAccessorSurfacesBorrowConflict(t *testing.T) {
	_, m := newModel(t)

	p, err := m.CreateParameter("k1")
	require.NoError(t, err)

	guard, err := p.Handle().Borrow()
	require.NoError(t, err)
	defer guard.Release()

	err = p.SetValue(1.0)
	assert.ErrorIs(t, err, borrow.ErrBorrowConflict)

	// Shared access stays available while the read guard is held.
	_, _, err = p.Value()
	assert.NoError(t, err)
}

func TestAnnotationThroughFacade(t *testing.T) {
	_, m := newModel(t)

	p, err := sbml.NewParameterBuilder(m, "k1").
		AnnotationValue(kineticsMeta{Solver: "rk4", Tol: 1e-6}).
		Build()
	require.NoError(t, err)

	got, err := sbml.AnnotationValue[kineticsMeta](p)
	require.NoError(t, err)
	assert.Equal(t, kineticsMeta{Solver: "rk4", Tol: 1e-6}, got)

	raw, err := p.Annotation()
	require.NoError(t, err)
	assert.Contains(t, raw, "<"+annotation.ContainerTag+">")
	assert.Contains(t, raw, "<kineticsMeta>")
}

func TestAnnotationNotFoundThroughFacade(t *testing.T) {
	_, m := newModel(t)

	p, err := m.CreateParameter("k1")
	require.NoError(t, err)

	_, err = sbml.AnnotationValue[kineticsMeta](p)
	assert.ErrorIs(t, err, annotation.ErrAnnotationNotFound)
}

func TestXMLStringRoundTrip(t *testing.T) {
	doc, m := newModel(t)

	_, err := sbml.NewParameterBuilder(m, "k1").Value(0.1).Build()
	require.NoError(t, err)
	_, err = m.CreateRateRule("k1", "-0.5 * k1")
	require.NoError(t, err)

	text, err := doc.XMLString()
	require.NoError(t, err)

	back, err := sbml.ReadXMLString(text)
	require.NoError(t, err)

	bm, err := back.Model()
	require.NoError(t, err)
	p, err := bm.Parameter("k1")
	require.NoError(t, err)

	v, ok, err := p.Value()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.1, v)

	r, err := bm.Rule("k1")
	require.NoError(t, err)
	rt, err := r.Type()
	require.NoError(t, err)
	assert.Equal(t, sbml.RuleTypeRate, rt)
}

type recordingLogger struct {
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.events = append(r.events, e)
}

func TestDocumentEventLogging(t *testing.T) {
	doc := sbml.DefaultDocument()
	rec := &recordingLogger{}
	doc.SetLogger(rec)

	m, err := doc.CreateModel("cell")
	require.NoError(t, err)
	_, err = m.CreateParameter("k1")
	require.NoError(t, err)
	r, err := m.CreateReaction("uptake")
	require.NoError(t, err)
	_, err = r.CreateReactant("glucose")
	require.NoError(t, err)

	require.Len(t, rec.events, 4)
	assert.Equal(t, log.OpCreate, rec.events[0].Op)
	assert.Equal(t, "model", rec.events[0].Kind)
	assert.Equal(t, "parameter", rec.events[1].Kind)
	assert.Equal(t, "k1", rec.events[1].ID)
	assert.NotEmpty(t, rec.events[1].MetaID)
	assert.Equal(t, "reaction", rec.events[2].Kind)
	assert.Equal(t, "reactant", rec.events[3].Kind)
	assert.Equal(t, "glucose", rec.events[3].ID)
}

func TestXMLStringBlockedByExclusiveBorrow(t *testing.T) {
	doc, _ := newModel(t)

	guard, err := doc.Handle().BorrowMut()
	require.NoError(t, err)
	defer guard.Release()

	_, err = doc.XMLString()
	assert.ErrorIs(t, err, borrow.ErrBorrowConflict)
}
