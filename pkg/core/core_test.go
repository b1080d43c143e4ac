package core

import "testing"

func TestDocumentBasics(t *testing.T) {
	doc := NewDocument(3, 2)

	t.Run("SchemaVersion", func(t *testing.T) {
		if doc.Level() != 3 || doc.Version() != 2 {
			t.Errorf("expected level 3 version 2, got %d/%d", doc.Level(), doc.Version())
		}
	})

	t.Run("MetaID", func(t *testing.T) {
		if doc.MetaID() == "" {
			t.Error("expected a meta ID assigned at creation")
		}
	})

	t.Run("NoModel", func(t *testing.T) {
		if doc.Model() != nil {
			t.Error("expected nil model on a fresh document")
		}
	})

	t.Run("CreateModel", func(t *testing.T) {
		m := doc.CreateModel("m")
		if m.ID() != "m" {
			t.Errorf("expected model id m, got %q", m.ID())
		}
		if doc.Model() != m {
			t.Error("expected document to own the created model")
		}
	})

	t.Run("CreateModelReplaces", func(t *testing.T) {
		first := doc.Model()
		second := doc.CreateModel("m2")
		if doc.Model() != second || doc.Model() == first {
			t.Error("expected CreateModel to replace the existing model")
		}
	})
}

func TestModelCollections(t *testing.T) {
	doc := NewDocument(3, 2)
	m := doc.CreateModel("m")

	t.Run("ParameterOrder", func(t *testing.T) {
		m.CreateParameter("p1")
		m.CreateParameter("p2")
		m.CreateParameter("p3")

		params := m.Parameters()
		if len(params) != 3 {
			t.Fatalf("expected 3 parameters, got %d", len(params))
		}
		for i, want := range []string{"p1", "p2", "p3"} {
			if params[i].ID() != want {
				t.Errorf("position %d: expected %s, got %s", i, want, params[i].ID())
			}
		}
	})

	t.Run("ParameterLookup", func(t *testing.T) {
		if p := m.Parameter("p2"); p == nil || p.ID() != "p2" {
			t.Error("expected lookup to find p2")
		}
		if p := m.Parameter("missing"); p != nil {
			t.Error("expected nil for unknown parameter id")
		}
	})

	t.Run("SpeciesLookup", func(t *testing.T) {
		m.CreateSpecies("s1")
		if s := m.Species("s1"); s == nil {
			t.Fatal("expected lookup to find s1")
		}
		if len(m.SpeciesList()) != 1 {
			t.Errorf("expected 1 species, got %d", len(m.SpeciesList()))
		}
	})

	t.Run("ListCopyIsolation", func(t *testing.T) {
		params := m.Parameters()
		params[0] = nil
		if m.Parameters()[0] == nil {
			t.Error("mutating the returned slice must not affect the model")
		}
	})
}

func TestParameterDefaults(t *testing.T) {
	doc := NewDocument(3, 2)
	m := doc.CreateModel("m")
	p := m.CreateParameter("p")

	if !p.Constant() {
		t.Error("expected constant default true")
	}
	if p.IsSetConstant() {
		t.Error("default constant must not count as explicitly set")
	}
	if p.IsSetValue() {
		t.Error("fresh parameter must have no value")
	}

	p.SetValue(1.5)
	p.SetConstant(false)
	if !p.IsSetValue() || p.Value() != 1.5 {
		t.Errorf("expected value 1.5 set, got %v (set=%v)", p.Value(), p.IsSetValue())
	}
	if p.Constant() || !p.IsSetConstant() {
		t.Error("expected constant false and explicitly set")
	}
}

func TestRuleDiscriminants(t *testing.T) {
	doc := NewDocument(3, 2)
	m := doc.CreateModel("m")

	rate := m.CreateRateRule()
	rate.SetVariable("s1")
	rate.SetFormula("k1 * s1")
	assign := m.CreateAssignmentRule()
	assign.SetVariable("s2")
	assign.SetFormula("2 * s1")

	t.Run("RateRule", func(t *testing.T) {
		if !rate.IsRate() || rate.IsAssignment() {
			t.Error("rate rule must report IsRate and never IsAssignment")
		}
	})

	t.Run("AssignmentRule", func(t *testing.T) {
		if !assign.IsAssignment() || assign.IsRate() {
			t.Error("assignment rule must report IsAssignment and never IsRate")
		}
	})

	t.Run("BaseListSameAddress", func(t *testing.T) {
		rules := m.Rules()
		if len(rules) != 2 {
			t.Fatalf("expected 2 rules, got %d", len(rules))
		}
		if rules[0] != &rate.Rule {
			t.Error("rule list must hold the base sub-object of the concrete rule")
		}
		if rules[0].Variable() != "s1" || rules[0].Formula() != "k1 * s1" {
			t.Error("base view must read the values set at creation")
		}
	})

	t.Run("LookupByVariable", func(t *testing.T) {
		if r := m.Rule("s2"); r == nil || !r.IsAssignment() {
			t.Error("expected to find the assignment rule by variable")
		}
	})
}

func TestSpeciesReferenceDefaults(t *testing.T) {
	doc := NewDocument(3, 2)
	m := doc.CreateModel("m")
	rxn := m.CreateReaction("r")

	reactant := rxn.CreateReactant()
	product := rxn.CreateProduct()

	if !reactant.IsReactant() || reactant.IsProduct() {
		t.Error("reactant must report IsReactant and never IsProduct")
	}
	if !product.IsProduct() || product.IsReactant() {
		t.Error("product must report IsProduct and never IsReactant")
	}
	if reactant.Stoichiometry() != 1 || !reactant.Constant() {
		t.Error("expected defaults stoichiometry=1 constant=true")
	}

	reactant.SetSpecies("glucose")
	if reactant.Species() != "glucose" {
		t.Errorf("expected species glucose, got %q", reactant.Species())
	}

	if len(rxn.Reactants()) != 1 || len(rxn.Products()) != 1 {
		t.Error("expected one reactant and one product")
	}
}

func TestAnnotationSlot(t *testing.T) {
	doc := NewDocument(3, 2)
	m := doc.CreateModel("m")
	p := m.CreateParameter("p")

	if p.IsSetAnnotation() {
		t.Error("fresh node must have no annotation")
	}

	p.SetAnnotationString("<annotation><test>test</test></annotation>")
	if !p.IsSetAnnotation() {
		t.Error("expected annotation present after set")
	}
	if p.AnnotationString() != "<annotation><test>test</test></annotation>" {
		t.Error("annotation slot must store the markup verbatim")
	}

	p.UnsetAnnotation()
	if p.IsSetAnnotation() {
		t.Error("expected annotation absent after unset")
	}
}
