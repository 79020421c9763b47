package domain

// NameType is the naming strategy an LLM used to produce a ProjectName.
type NameType string

const (
	NameTypeDirectCombination NameType = "direct_combination"
	NameTypeConceptFusion     NameType = "concept_fusion"
	NameTypeNewWord           NameType = "new_word"
	NameTypeSpecialNaming     NameType = "special_naming"
)

// Valid reports whether t is one of the known strategies.
func (t NameType) Valid() bool {
	switch t {
	case NameTypeDirectCombination, NameTypeConceptFusion, NameTypeNewWord, NameTypeSpecialNaming:
		return true
	default:
		return false
	}
}

// TargetMarket hints the name generator about the audience language and culture.
type TargetMarket string

const (
	MarketGlobal TargetMarket = "global"
	MarketChina  TargetMarket = "china"
	MarketUS     TargetMarket = "us"
	MarketEU     TargetMarket = "eu"
)

// Valid reports whether m is a supported market.
func (m TargetMarket) Valid() bool {
	switch m {
	case MarketGlobal, MarketChina, MarketUS, MarketEU:
		return true
	default:
		return false
	}
}

// ProjectName is a single generated brand or project name candidate.
type ProjectName struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       NameType `json:"nameType"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// DomainContext summarizes the business behind a description.
type DomainContext struct {
	BusinessType   string `json:"businessType"`
	TargetAudience string `json:"targetAudience"`
	CoreValue      string `json:"coreValue"`
}

// AnalysisResult is the outcome of the text analysis step.
type AnalysisResult struct {
	// InputID identifies the analysed input; it is fresh for every analysis.
	InputID  string   `json:"inputId"`
	Keywords []string `json:"keywords"`
	// SemanticExtensions maps each keyword to related words.
	SemanticExtensions map[string][]string `json:"semanticExtensions"`
	DomainContext      DomainContext       `json:"domainContext"`
}
