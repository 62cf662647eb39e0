package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	nameThreshold         = 0.5
	colorThreshold        = 0.7
	manufacturerThreshold = 0.5
	countryThreshold      = 0.5
	compressionThreshold  = 0.8
)

// ratio is a normalized string similarity in [0,1]: 1 for equal strings,
// decreasing with edit distance over runes.
func ratio(a, b string) float64 {
	if a == b {
		return 1
	}

	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	dist := fuzzy.LevenshteinDistance(a, b)

	return 1 - float64(dist)/float64(longest)
}

func isSimilarName(keyword, productName string) bool {
	keyword = strings.ToLower(keyword)
	productName = strings.ToLower(productName)

	if strings.Contains(productName, keyword) {
		return true
	}

	return ratio(keyword, productName) > nameThreshold
}

func isSimilarColor(keyword, productColor string) bool {
	keyword = strings.ToLower(keyword)
	productColor = strings.ToLower(productColor)

	if keyword == productColor {
		return true
	}

	return ratio(keyword, productColor) > colorThreshold
}

func isSimilarManufacturer(keyword, productManufacturer string) bool {
	keyword = strings.ToLower(keyword)
	productManufacturer = strings.ToLower(productManufacturer)

	if keyword == productManufacturer {
		return true
	}

	return ratio(keyword, productManufacturer) > manufacturerThreshold
}

func isSimilarCountry(keyword, productCountry string) bool {
	keyword = strings.ToLower(keyword)
	productCountry = strings.ToLower(productCountry)

	if keyword == productCountry {
		return true
	}

	return ratio(keyword, productCountry) > countryThreshold
}

// isSimilarCompression matches compression class values shaped like
// "I - 18-21 mmHg": the keyword is compared against the first two runes and
// against the rune suffix starting at index 3, both trimmed. Values of any
// other shape fall through to plain similarity.
func isSimilarCompression(keyword, compressionClass string) bool {
	keyword = strings.ToLower(keyword)
	compressionClass = strings.ToLower(compressionClass)

	runes := []rune(compressionClass)

	if len(runes) >= 2 && keyword == strings.TrimSpace(string(runes[:2])) {
		return true
	}
	if len(runes) > 3 && keyword == strings.TrimSpace(string(runes[3:])) {
		return true
	}

	return ratio(keyword, compressionClass) > compressionThreshold
}
