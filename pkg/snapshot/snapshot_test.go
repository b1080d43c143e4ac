package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/snapshot"
)

func buildDocument(t *testing.T) *core.Document {
	t.Helper()

	doc := core.NewDocument(3, 2)
	m := doc.CreateModel("cell")
	m.SetName("minimal cell")

	k1 := m.CreateParameter("k1")
	k1.SetValue(0.1)
	k1.SetUnits("per_second")

	glc := m.CreateSpecies("glucose")
	glc.SetCompartment("cytosol")
	glc.SetInitialConcentration(5.5)
	glc.SetAnnotationString(`<annotation><note xmlns:x="http://example.org">raw</note></annotation>`)

	r := m.CreateReaction("uptake")
	r.SetReversible(true)
	re := r.CreateReactant()
	re.SetSpecies("glucose")
	re.SetStoichiometry(2)
	pr := r.CreateProduct()
	pr.SetSpecies("g6p")

	rate := m.CreateRateRule()
	rate.SetVariable("glucose")
	rate.SetFormula("-k1 * glucose")

	return doc
}

func TestRoundTrip(t *testing.T) {
	doc := buildDocument(t)

	data, err := snapshot.Encode(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	back, err := snapshot.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Level(), back.Level())
	assert.Equal(t, doc.Version(), back.Version())
	assert.Equal(t, doc.MetaID(), back.MetaID())

	m := back.Model()
	require.NotNil(t, m)
	assert.Equal(t, "cell", m.ID())
	assert.Equal(t, "minimal cell", m.Name())

	k1 := m.Parameter("k1")
	require.NotNil(t, k1)
	assert.True(t, k1.IsSetValue())
	assert.Equal(t, 0.1, k1.Value())
	assert.False(t, k1.IsSetConstant())
	assert.True(t, k1.Constant())

	glc := m.Species("glucose")
	require.NotNil(t, glc)
	assert.True(t, glc.IsSetInitialConcentration())
	assert.Equal(t, 5.5, glc.InitialConcentration())
	assert.Equal(t,
		`<annotation><note xmlns:x="http://example.org">raw</note></annotation>`,
		glc.AnnotationString())

	r := m.Reaction("uptake")
	require.NotNil(t, r)
	assert.True(t, r.Reversible())
	require.Len(t, r.Reactants(), 1)
	assert.Equal(t, "glucose", r.Reactants()[0].Species())
	assert.Equal(t, 2.0, r.Reactants()[0].Stoichiometry())
	assert.True(t, r.Reactants()[0].IsReactant())
	require.Len(t, r.Products(), 1)
	assert.True(t, r.Products()[0].IsProduct())

	rules := m.Rules()
	require.Len(t, rules, 1)
	assert.True(t, rules[0].IsRate())
	assert.Equal(t, "-k1 * glucose", rules[0].Formula())
}

func TestDeterministicEncoding(t *testing.T) {
	doc := buildDocument(t)

	a, err := snapshot.Encode(doc)
	require.NoError(t, err)
	b, err := snapshot.Encode(doc)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEmptyDocument(t *testing.T) {
	doc := core.NewDocument(2, 4)

	data, err := snapshot.Encode(doc)
	require.NoError(t, err)

	back, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint(2), back.Level())
	assert.Equal(t, uint(4), back.Version())
	assert.Nil(t, back.Model())
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	// Minimal CBOR map {1: 99}: a snapshot claiming format version 99.
	data := []byte{0xa1, 0x01, 0x18, 0x63}

	_, err := snapshot.Decode(data)
	assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := snapshot.Decode([]byte{0xff, 0x00, 0x13})
	assert.Error(t, err)
}
