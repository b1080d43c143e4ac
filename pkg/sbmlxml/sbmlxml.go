package sbmlxml

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/annotation"
	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/version"
)

// ErrMalformedDocument marks input that does not parse as an SBML
// document.
var ErrMalformedDocument = errors.New("malformed sbml document")

type xmlBase struct {
	MetaID     string         `xml:"metaid,attr,omitempty"`
	Name       string         `xml:"name,attr,omitempty"`
	SBOTerm    string         `xml:"sboTerm,attr,omitempty"`
	Annotation *xmlAnnotation `xml:"annotation,omitempty"`
}

// xmlAnnotation carries the container content raw, so foreign markup
// is neither re-encoded nor escaped.
type xmlAnnotation struct {
	Inner string `xml:",innerxml"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"sbml"`
	xmlBase
	XMLNS   string    `xml:"xmlns,attr"`
	Level   uint      `xml:"level,attr"`
	Version uint      `xml:"version,attr"`
	Model   *xmlModel `xml:"model"`
}

type xmlModel struct {
	xmlBase
	ID         string            `xml:"id,attr,omitempty"`
	Parameters *xmlParameterList `xml:"listOfParameters"`
	Species    *xmlSpeciesList   `xml:"listOfSpecies"`
	Reactions  *xmlReactionList  `xml:"listOfReactions"`
	Rules      *xmlRuleList      `xml:"listOfRules"`
}

type xmlParameterList struct {
	Items []xmlParameter `xml:"parameter"`
}

type xmlParameter struct {
	xmlBase
	ID       string   `xml:"id,attr,omitempty"`
	Value    *float64 `xml:"value,attr,omitempty"`
	Units    string   `xml:"units,attr,omitempty"`
	Constant *bool    `xml:"constant,attr,omitempty"`
}

type xmlSpeciesList struct {
	Items []xmlSpecies `xml:"species"`
}

type xmlSpecies struct {
	xmlBase
	ID                   string   `xml:"id,attr,omitempty"`
	Compartment          string   `xml:"compartment,attr,omitempty"`
	InitialConcentration *float64 `xml:"initialConcentration,attr,omitempty"`
	BoundaryCondition    bool     `xml:"boundaryCondition,attr"`
	Constant             bool     `xml:"constant,attr"`
}

type xmlReactionList struct {
	Items []xmlReaction `xml:"reaction"`
}

type xmlReaction struct {
	xmlBase
	ID         string          `xml:"id,attr,omitempty"`
	Reversible bool            `xml:"reversible,attr"`
	Reactants  *xmlSpeciesRefs `xml:"listOfReactants"`
	Products   *xmlSpeciesRefs `xml:"listOfProducts"`
}

type xmlSpeciesRefs struct {
	Items []xmlSpeciesRef `xml:"speciesReference"`
}

type xmlSpeciesRef struct {
	xmlBase
	Species       string  `xml:"species,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
	Constant      bool    `xml:"constant,attr"`
}

// Rule element names inside <listOfRules>.
const (
	rateRuleTag       = "rateRule"
	assignmentRuleTag = "assignmentRule"
)

type xmlRule struct {
	xmlBase
	kind     string
	Variable string `xml:"variable,attr"`
	Formula  string `xml:"formula,attr"`
}

// xmlRuleList keeps the rule variants in document order, which two
// per-variant slices would lose.
type xmlRuleList struct {
	Items []xmlRule
}

func (l *xmlRuleList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, r := range l.Items {
		el := xml.StartElement{Name: xml.Name{Local: r.kind}}
		if err := e.EncodeElement(r, el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func (l *xmlRuleList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != rateRuleTag && t.Name.Local != assignmentRuleTag {
				return fmt.Errorf("unexpected <%s> in rule list", t.Name.Local)
			}
			var r xmlRule
			if err := d.DecodeElement(&r, &t); err != nil {
				return err
			}
			r.kind = t.Name.Local
			l.Items = append(l.Items, r)
		case xml.EndElement:
			return nil
		}
	}
}

// Write serializes the document tree to indented markup with an XML
// declaration.
func Write(doc *core.Document) (string, error) {
	w, err := documentToWire(doc)
	if err != nil {
		return "", err
	}
	out, err := xml.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

// Read parses document markup and rebuilds the tree through the core
// factories.
func Read(text string) (*core.Document, error) {
	var w xmlDocument
	if err := xml.Unmarshal([]byte(text), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return documentFromWire(&w)
}

func baseToWire(n *core.SBase) (xmlBase, error) {
	b := xmlBase{
		MetaID:  n.MetaID(),
		Name:    n.Name(),
		SBOTerm: n.SBOTerm(),
	}
	if n.IsSetAnnotation() {
		inner, err := containerInner(n.AnnotationString())
		if err != nil {
			return xmlBase{}, fmt.Errorf("serializing annotation of %s: %w", n.MetaID(), err)
		}
		b.Annotation = &xmlAnnotation{Inner: inner}
	}
	return b, nil
}

func baseFromWire(w xmlBase, n *core.SBase) {
	if w.MetaID != "" {
		n.SetMetaID(w.MetaID)
	}
	n.SetName(w.Name)
	n.SetSBOTerm(w.SBOTerm)
	if w.Annotation != nil {
		tag := annotation.ContainerTag
		n.SetAnnotationString("<" + tag + ">" + w.Annotation.Inner + "</" + tag + ">")
	}
}

// containerInner returns the raw content between the annotation
// container's start and end tags.
func containerInner(markup string) (string, error) {
	var el struct {
		Inner string `xml:",innerxml"`
	}
	if err := xml.Unmarshal([]byte(markup), &el); err != nil {
		return "", err
	}
	return el.Inner, nil
}

func documentToWire(doc *core.Document) (*xmlDocument, error) {
	base, err := baseToWire(&doc.SBase)
	if err != nil {
		return nil, err
	}
	w := &xmlDocument{
		xmlBase: base,
		XMLNS:   version.SchemaVersion{Level: doc.Level(), Version: doc.Version()}.Namespace(),
		Level:   doc.Level(),
		Version: doc.Version(),
	}
	if m := doc.Model(); m != nil {
		wm, err := modelToWire(m)
		if err != nil {
			return nil, err
		}
		w.Model = wm
	}
	return w, nil
}

func modelToWire(m *core.Model) (*xmlModel, error) {
	base, err := baseToWire(&m.SBase)
	if err != nil {
		return nil, err
	}
	w := &xmlModel{xmlBase: base, ID: m.ID()}

	if params := m.Parameters(); len(params) > 0 {
		w.Parameters = &xmlParameterList{}
		for _, p := range params {
			wp, err := parameterToWire(p)
			if err != nil {
				return nil, err
			}
			w.Parameters.Items = append(w.Parameters.Items, wp)
		}
	}
	if species := m.SpeciesList(); len(species) > 0 {
		w.Species = &xmlSpeciesList{}
		for _, s := range species {
			ws, err := speciesToWire(s)
			if err != nil {
				return nil, err
			}
			w.Species.Items = append(w.Species.Items, ws)
		}
	}
	if reactions := m.Reactions(); len(reactions) > 0 {
		w.Reactions = &xmlReactionList{}
		for _, r := range reactions {
			wr, err := reactionToWire(r)
			if err != nil {
				return nil, err
			}
			w.Reactions.Items = append(w.Reactions.Items, wr)
		}
	}
	if rules := m.Rules(); len(rules) > 0 {
		w.Rules = &xmlRuleList{}
		for _, r := range rules {
			wr, err := ruleToWire(r)
			if err != nil {
				return nil, err
			}
			w.Rules.Items = append(w.Rules.Items, wr)
		}
	}
	return w, nil
}

func parameterToWire(p *core.Parameter) (xmlParameter, error) {
	base, err := baseToWire(&p.SBase)
	if err != nil {
		return xmlParameter{}, err
	}
	w := xmlParameter{xmlBase: base, ID: p.ID(), Units: p.Units()}
	if p.IsSetValue() {
		v := p.Value()
		w.Value = &v
	}
	if p.IsSetConstant() {
		c := p.Constant()
		w.Constant = &c
	}
	return w, nil
}

func speciesToWire(s *core.Species) (xmlSpecies, error) {
	base, err := baseToWire(&s.SBase)
	if err != nil {
		return xmlSpecies{}, err
	}
	w := xmlSpecies{
		xmlBase:           base,
		ID:                s.ID(),
		Compartment:       s.Compartment(),
		BoundaryCondition: s.BoundaryCondition(),
		Constant:          s.Constant(),
	}
	if s.IsSetInitialConcentration() {
		c := s.InitialConcentration()
		w.InitialConcentration = &c
	}
	return w, nil
}

func reactionToWire(r *core.Reaction) (xmlReaction, error) {
	base, err := baseToWire(&r.SBase)
	if err != nil {
		return xmlReaction{}, err
	}
	w := xmlReaction{xmlBase: base, ID: r.ID(), Reversible: r.Reversible()}

	if reactants := r.Reactants(); len(reactants) > 0 {
		w.Reactants = &xmlSpeciesRefs{}
		for _, sr := range reactants {
			ws, err := speciesRefToWire(sr)
			if err != nil {
				return xmlReaction{}, err
			}
			w.Reactants.Items = append(w.Reactants.Items, ws)
		}
	}
	if products := r.Products(); len(products) > 0 {
		w.Products = &xmlSpeciesRefs{}
		for _, sr := range products {
			ws, err := speciesRefToWire(sr)
			if err != nil {
				return xmlReaction{}, err
			}
			w.Products.Items = append(w.Products.Items, ws)
		}
	}
	return w, nil
}

func speciesRefToWire(sr *core.SpeciesReference) (xmlSpeciesRef, error) {
	base, err := baseToWire(&sr.SBase)
	if err != nil {
		return xmlSpeciesRef{}, err
	}
	return xmlSpeciesRef{
		xmlBase:       base,
		Species:       sr.Species(),
		Stoichiometry: sr.Stoichiometry(),
		Constant:      sr.Constant(),
	}, nil
}

func ruleToWire(r *core.Rule) (xmlRule, error) {
	base, err := baseToWire(&r.SBase)
	if err != nil {
		return xmlRule{}, err
	}
	w := xmlRule{xmlBase: base, Variable: r.Variable(), Formula: r.Formula()}
	switch {
	case r.IsRate():
		w.kind = rateRuleTag
	case r.IsAssignment():
		w.kind = assignmentRuleTag
	default:
		return xmlRule{}, fmt.Errorf("rule for %q has no known variant", r.Variable())
	}
	return w, nil
}

func documentFromWire(w *xmlDocument) (*core.Document, error) {
	level, ver := w.Level, w.Version
	if level == 0 {
		// No explicit attributes; fall back to the namespace, then to
		// the defaults.
		if sv, err := version.FromNamespace(w.XMLNS); err == nil {
			level, ver = sv.Level, sv.Version
		} else {
			level, ver = core.DefaultLevel, core.DefaultVersion
		}
	}
	doc := core.NewDocument(level, ver)
	baseFromWire(w.xmlBase, &doc.SBase)

	if w.Model != nil {
		if err := modelFromWire(w.Model, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func modelFromWire(w *xmlModel, doc *core.Document) error {
	m := doc.CreateModel(w.ID)
	baseFromWire(w.xmlBase, &m.SBase)

	if w.Parameters != nil {
		for _, wp := range w.Parameters.Items {
			parameterFromWire(wp, m)
		}
	}
	if w.Species != nil {
		for _, ws := range w.Species.Items {
			speciesFromWire(ws, m)
		}
	}
	if w.Reactions != nil {
		for _, wr := range w.Reactions.Items {
			reactionFromWire(wr, m)
		}
	}
	if w.Rules != nil {
		for _, wr := range w.Rules.Items {
			if err := ruleFromWire(wr, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func parameterFromWire(w xmlParameter, m *core.Model) {
	p := m.CreateParameter(w.ID)
	baseFromWire(w.xmlBase, &p.SBase)
	if w.Value != nil {
		p.SetValue(*w.Value)
	}
	p.SetUnits(w.Units)
	if w.Constant != nil {
		p.SetConstant(*w.Constant)
	}
}

func speciesFromWire(w xmlSpecies, m *core.Model) {
	s := m.CreateSpecies(w.ID)
	baseFromWire(w.xmlBase, &s.SBase)
	s.SetCompartment(w.Compartment)
	if w.InitialConcentration != nil {
		s.SetInitialConcentration(*w.InitialConcentration)
	}
	s.SetBoundaryCondition(w.BoundaryCondition)
	s.SetConstant(w.Constant)
}

func reactionFromWire(w xmlReaction, m *core.Model) {
	r := m.CreateReaction(w.ID)
	baseFromWire(w.xmlBase, &r.SBase)
	r.SetReversible(w.Reversible)

	if w.Reactants != nil {
		for _, ws := range w.Reactants.Items {
			speciesRefFromWire(ws, r.CreateReactant())
		}
	}
	if w.Products != nil {
		for _, ws := range w.Products.Items {
			speciesRefFromWire(ws, r.CreateProduct())
		}
	}
}

func speciesRefFromWire(w xmlSpeciesRef, sr *core.SpeciesReference) {
	baseFromWire(w.xmlBase, &sr.SBase)
	sr.SetSpecies(w.Species)
	sr.SetStoichiometry(w.Stoichiometry)
	sr.SetConstant(w.Constant)
}

func ruleFromWire(w xmlRule, m *core.Model) error {
	var r *core.Rule
	switch w.kind {
	case rateRuleTag:
		r = &m.CreateRateRule().Rule
	case assignmentRuleTag:
		r = &m.CreateAssignmentRule().Rule
	default:
		return fmt.Errorf("%w: unknown rule element <%s>", ErrMalformedDocument, w.kind)
	}
	baseFromWire(w.xmlBase, &r.SBase)
	r.SetVariable(w.Variable)
	r.SetFormula(w.Formula)
	return nil
}
