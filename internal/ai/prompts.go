package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"smartdomain/pkg/domain"
)

const analysisSystemPrompt = "You are a product naming and brand strategy expert. " +
	"You analyse product descriptions and extract the concepts a brand name should convey."

const namingSystemPrompt = "You are a creative naming expert who invents unique, memorable names " +
	"with brand potential. Always answer with valid JSON."

func analysisPrompt(description string) string {
	return fmt.Sprintf(`Analyse the following product description, extract its core keywords and expand each keyword semantically:
%q

Requirements:
1. Identify the core business concepts
2. Identify the target audience
3. Identify the product type
4. For every keyword list related English words that could inspire a brand name

Answer with JSON in this shape:
{
  "keywords": ["keyword1", "keyword2"],
  "semanticExtensions": {
    "keyword1": ["related1", "related2"],
    "keyword2": ["related3", "related4"]
  },
  "domainContext": {
    "businessType": "social/tool/e-commerce/...",
    "targetAudience": "who the product is for",
    "coreValue": "core value proposition"
  }
}`, description)
}

func namingPrompt(req NameRequest) string {
	extensions, _ := json.MarshalIndent(req.Extensions, "", "  ")

	special := "internationally friendly naming"
	if req.TargetMarket == domain.MarketChina {
		special = "naming that reads well in Chinese and pinyin"
	}

	return fmt.Sprintf(`Create project names from these keywords:
Keywords: %s
Semantic extensions: %s
Target market: %s

Requirements:
1. Generate %d creative project names
2. Use these strategies:
   - direct_combination: combine keywords directly
   - concept_fusion: fuse concepts into a new meaning
   - new_word: invent a short memorable word
   - special_naming: %s

Each suggestion contains:
- name: the project name (letters and digits only, no spaces)
- nameType: one of direct_combination, concept_fusion, new_word, special_naming
- reasoning: where the idea comes from and what it means
- confidence: brand potential score between 0.1 and 1.0

Answer with JSON containing a suggestions array:
{
  "suggestions": [
    {"name": "Name", "nameType": "new_word", "reasoning": "...", "confidence": 0.8}
  ]
}`, strings.Join(req.Keywords, ", "), extensions, req.TargetMarket, req.MaxCount, special)
}
