// Package curriculum holds the static weekly rhythm: which track each
// weekday belongs to, the ordered module list per track, and the five
// year-phase business narratives. The tables are read-only at runtime.
package curriculum

import "time"

type Track int

const (
	TrackCoding Track = iota
	TrackMarketing
	TrackOps
	TrackStrategy
)

func (t Track) String() string {
	switch t {
	case TrackCoding:
		return "Coding & Automation"
	case TrackMarketing:
		return "Marketing & Content"
	case TrackOps:
		return "BMI Ops Project"
	case TrackStrategy:
		return "Strategy / Review"
	default:
		return "Unknown"
	}
}

func (t Track) IsValid() bool {
	switch t {
	case TrackCoding, TrackMarketing, TrackOps, TrackStrategy:
		return true
	default:
		return false
	}
}

// TrackForWeekday maps the weekly rhythm: Mon/Wed/Fri coding, Tue/Thu
// marketing, Sat ops, Sun strategy/review.
func TrackForWeekday(d time.Weekday) Track {
	switch d {
	case time.Monday, time.Wednesday, time.Friday:
		return TrackCoding
	case time.Tuesday, time.Thursday:
		return TrackMarketing
	case time.Saturday:
		return TrackOps
	case time.Sunday:
		fallthrough
	default:
		return TrackStrategy
	}
}

var codingModules = []string{
	"Python: data types, loops, functions",
	"Python: files, JSON, error handling",
	"SQL: SELECT/JOIN/AGG",
	"Pandas basics for analysis",
	"Flask/Django: CRUD app",
	"Auth & roles (admin/distributor)",
	"REST APIs for inventory",
	"React basics (components/state)",
	"Next.js pages & API routes",
	"Deploy to Vercel/Render",
	"Data viz (charts/dashboards)",
	"Automation: Excel/CSV pipelines",
}

var marketingModules = []string{
	"SEO basics: keywords & intent",
	"On-page SEO: titles/meta/alt",
	"Content calendar for BMI",
	"Facebook/IG ads fundamentals",
	"Google Ads basics",
	"Landing page copywriting",
	"Email CRM (segmentation)",
	"LinkedIn outreach (B2B)",
	"Competitor teardown (5 brands)",
	"Photography standards for SKUs",
	"Short-form video workflow",
	"Analytics (GA4, Meta)",
}

var opsModules = []string{
	"Catalog: 92 SKUs × sizes × colors (audit)",
	"Map distributors by region",
	"Hospital/clinic leads list",
	"Website IA + wireframes",
	"Set packaging/labeling guidelines",
	"Prepare ISO documentation packet",
	"B2B order form requirements",
	"Calculate pricing & margin sheets",
	"Logistics & delivery SLAs",
	"CSR & partnerships plan",
	"Sports physio pilot program",
	"Quarterly board review deck",
}

var strategyModules = []string{
	"Weekly review: wins/blockers",
	"Read: The Prince / Art of War",
	"Read: Blue Ocean / Lean Startup",
	"Roadmap adjust: next sprint",
	"Finance check: P&L snapshot",
	"Product ideas backlog grooming",
	"Rest & recovery / family",
}

// Modules returns the ordered module list for a track. Callers must not
// mutate the returned slice.
func Modules(t Track) []string {
	switch t {
	case TrackCoding:
		return codingModules
	case TrackMarketing:
		return marketingModules
	case TrackOps:
		return opsModules
	case TrackStrategy:
		return strategyModules
	default:
		return nil
	}
}

// BuildPhrase is the fixed BUILD-slot phrase per track. Unknown tracks
// get the strategy default.
func BuildPhrase(t Track) string {
	switch t {
	case TrackCoding:
		return "Implement feature or script"
	case TrackMarketing:
		return "Draft content/ads"
	case TrackOps:
		return "Complete sub-task of ops item"
	default:
		return "Plan upcoming week"
	}
}

var phaseNarratives = [5]string{
	"Compile SKU/size/color data into master sheet",
	"Reach out to 5 clinics/distributors",
	"Marketplace/export prep (1 micro-task)",
	"Data collection for forecasting",
	"KPI review & optimize",
}

// PhaseNarrative returns the BUSINESS-slot narrative for a year phase,
// clamping out-of-range indexes into [0, 4].
func PhaseNarrative(idx int) string {
	if idx < 0 {
		idx = 0
	}
	if idx > 4 {
		idx = 4
	}
	return phaseNarratives[idx]
}
