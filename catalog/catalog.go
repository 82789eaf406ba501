// Package catalog holds the static table of government savings schemes
// and the keyword search over it. The table is reference data only; it
// is never persisted.
package catalog

import (
	"strings"

	"github.com/gosimple/slug"
)

// Entry is one scheme in the static catalog.
type Entry struct {
	Code string
	Name string
	Tag  string
	Desc string
}

// SearchResult is the simplified card shape returned by /search.
type SearchResult struct {
	ID               string `json:"id"`
	SchemeName       string `json:"scheme_name"`
	ShortDescription string `json:"short_description"`
	KeyBenefit       string `json:"key_benefit"`
}

// Schemes is the full catalog in definition order. Search results are
// emitted in this order, not relevance-scored.
var Schemes = []Entry{
	{"PPF", "Public Provident Fund (PPF)", "Long-Term, Tax-Free", "A popular long-term saving scheme with tax benefits under Section 80C."},
	{"SCSS", "Senior Citizen's Saving Scheme (SCSS)", "Age 60+, High Interest", "Designed for retired individuals to provide a steady income stream."},
	{"NSC", "National Savings Certificate (NSC)", "Fixed Income, Tax Benefit", "A fixed-income scheme that offers tax benefits and can be used as collateral."},
	{"SSY", "Sukanya Samriddhi Yojana (SSY)", "Female Child, High Interest", "Exclusive scheme for the savings for a girl child's future."},
	{"NPS", "National Pension System (NPS)", "Retirement, Market Linked", "Market-linked scheme for long-term retirement planning with tax benefits under Section 80CCD."},
	{"AP", "Atal Pension Yojana (APY)", "Low Income, Pension", "Government scheme for workers in the unorganized sector to ensure income security after retirement."},
	{"KVP", "Kisan Vikas Patra (KVP)", "Doubling, Safe", "A certificate scheme that guarantees to double the amount invested after a specified period."},
	{"ELSS", "Equity Linked Savings Scheme (ELSS)", "Growth, Tax Deduction, Short Lock-in", "A type of mutual fund that qualifies for tax deductions under Section 80C, offering market-linked growth."},
	{"LIC", "Life Insurance Corporation (LIC) Policies", "Insurance, Savings, Protection", "Various policies offering life coverage combined with a disciplined savings component."},
	{"FD", "Tax Saving Fixed Deposit (FD)", "Safe, Tax Deduction, 5-Year Lock-in", "A special type of bank Fixed Deposit that provides a fixed return while qualifying for tax benefits."},
	{"PMVVY", "Pradhan Mantri Vaya Vandana Yojana (PMVVY)", "Age 60+, Pension, Safe", "A pension scheme exclusively for senior citizens, providing an assured return based on the purchase price."},
	{"PMSBY", "Pradhan Mantri Suraksha Bima Yojana (PMSBY)", "Insurance, Low Premium, Accident", "A low-cost accident insurance scheme for Indian citizens, covering accidental death and disability."},
	{"PMJJBY", "Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)", "Insurance, Low Premium, Life", "A government-backed life insurance scheme providing life cover for one year, renewable annually."},
	{"PMJDY", "Pradhan Mantri Jan Dhan Yojana (PMJDY)", "Zero Balance, Bank Account", "National mission for financial inclusion to ensure access to financial services like banking, savings, and credit."},
	{"SGB", "Sovereign Gold Bond (SGB)", "Gold Investment, Tax Efficient", "Government securities denominated in grams of gold, offering safety and an interest rate, ideal for long-term gold exposure."},
	{"POMIS", "Post Office Monthly Income Scheme (POMIS)", "Monthly Income, Low Risk", "A popular scheme providing fixed monthly income with a low-risk profile, ideal for steady returns."},
	{"VPF", "Voluntary Provident Fund (VPF)", "Extra Savings, Tax-Free, Salaried", "Allows salaried employees to voluntarily contribute over the mandatory EPF limit for higher interest and tax-free accumulation."},
	{"EPF", "Employee Provident Fund (EPF)", "Mandatory Savings, Tax-Free, Salaried", "A compulsory retirement savings scheme for salaried employees with mandated contributions from both employer and employee."},
}

// Find returns every scheme whose code, name, tag, or description
// contains the query as a case-insensitive substring. An empty query
// matches the whole catalog; callers that want "empty means nothing"
// must guard before calling.
func Find(query string) []SearchResult {
	query = strings.ToLower(query)
	results := []SearchResult{}

	for _, entry := range Schemes {
		searchFields := strings.ToLower(entry.Code) +
			strings.ToLower(entry.Name) +
			strings.ToLower(entry.Tag) +
			strings.ToLower(entry.Desc)

		if strings.Contains(searchFields, query) {
			results = append(results, SearchResult{
				ID:               slug.Make(entry.Name),
				SchemeName:       entry.Name,
				ShortDescription: entry.Desc,
				KeyBenefit:       entry.Tag,
			})
		}
	}
	return results
}

// Lookup resolves a scheme display name (case-insensitive) to its
// catalog entry. Used to enrich enrollment listings; enrollments store
// free-form names, so a miss is not an error.
func Lookup(name string) (*Entry, bool) {
	for i := range Schemes {
		if strings.EqualFold(Schemes[i].Name, name) {
			return &Schemes[i], true
		}
	}
	return nil, false
}
