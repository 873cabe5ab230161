package theme

// Weekday numbering is 0=Monday .. 6=Sunday throughout this package,
// matching the server's metric configuration.

// Metric is the static metadata for one economic indicator code.
type Metric struct {
	Code    string
	Name    string
	Source  string
	Unit    string
	Weekday int
	Order   int
	Refresh string
}

// themes maps weekday to theme name. Saturday and Sunday carry no themed
// metrics; the dashboard shows the weekly reflection instead.
var themes = map[int]string{
	0: "Fed & Interest Rates",
	1: "Real Estate & Housing",
	2: "Economic Health",
	3: "Regional & Energy",
	4: "Markets & Week Summary",
	5: "Weekly Reflection",
	6: "Weekly Reflection",
}

// DefaultThemeName is used for any unmapped weekday input.
const DefaultThemeName = "Economic Overview"

// bigFive are always considered relevant regardless of weekday.
var bigFive = map[string]struct{}{
	"FEDFUNDS": {},
	"UNRATE":   {},
	"CPIAUCSL": {},
	"GDP":      {},
	"SP500":    {},
}

var metrics = []Metric{
	// Monday: Fed & Interest Rates.
	{Code: "FEDFUNDS", Name: "Federal Funds Rate", Source: "FRED", Unit: "%", Weekday: 0, Order: 1, Refresh: "daily"},
	{Code: "DFF", Name: "Federal Funds Effective Rate (Daily)", Source: "FRED", Unit: "%", Weekday: 0, Order: 2, Refresh: "daily"},
	{Code: "DFEDTARU", Name: "Fed Funds Target Range - Upper Limit", Source: "FRED", Unit: "%", Weekday: 0, Order: 3, Refresh: "daily"},
	{Code: "DGS10", Name: "10-Year Treasury Rate", Source: "FRED", Unit: "%", Weekday: 0, Order: 4, Refresh: "daily"},
	{Code: "DGS2", Name: "2-Year Treasury Rate", Source: "FRED", Unit: "%", Weekday: 0, Order: 5, Refresh: "daily"},
	{Code: "T10Y2Y", Name: "10-Year Treasury Minus 2-Year (Yield Curve)", Source: "FRED", Unit: "%", Weekday: 0, Order: 6, Refresh: "daily"},
	{Code: "SOFR", Name: "Secured Overnight Financing Rate", Source: "FRED", Unit: "%", Weekday: 0, Order: 7, Refresh: "daily"},

	// Tuesday: Real Estate & Housing.
	{Code: "MORTGAGE30US", Name: "30-Year Fixed Mortgage Rate", Source: "FRED", Unit: "%", Weekday: 1, Order: 1, Refresh: "weekly"},
	{Code: "MORTGAGE15US", Name: "15-Year Fixed Mortgage Rate", Source: "FRED", Unit: "%", Weekday: 1, Order: 2, Refresh: "weekly"},
	{Code: "HOUST", Name: "Housing Starts", Source: "FRED", Unit: "Thousands", Weekday: 1, Order: 3, Refresh: "monthly"},
	{Code: "PERMIT", Name: "Building Permits", Source: "FRED", Unit: "Thousands", Weekday: 1, Order: 4, Refresh: "monthly"},
	{Code: "UMCSENT", Name: "Consumer Sentiment Index", Source: "FRED", Unit: "Index", Weekday: 1, Order: 5, Refresh: "monthly"},
	{Code: "CSUSHPINSA", Name: "S&P/Case-Shiller Home Price Index", Source: "FRED", Unit: "Index", Weekday: 1, Order: 6, Refresh: "monthly"},
	{Code: "MSPUS", Name: "Median Sales Price of Houses", Source: "FRED", Unit: "Dollars", Weekday: 1, Order: 7, Refresh: "quarterly"},
	{Code: "RRVRUSQ156N", Name: "Homeowner Vacancy Rate", Source: "FRED", Unit: "%", Weekday: 1, Order: 8, Refresh: "quarterly"},

	// Wednesday: Economic Health.
	{Code: "GDP", Name: "Gross Domestic Product", Source: "FRED", Unit: "Billions $", Weekday: 2, Order: 1, Refresh: "quarterly"},
	{Code: "UNRATE", Name: "Unemployment Rate", Source: "FRED", Unit: "%", Weekday: 2, Order: 2, Refresh: "monthly"},
	{Code: "PAYEMS", Name: "Nonfarm Payrolls", Source: "FRED", Unit: "Thousands", Weekday: 2, Order: 3, Refresh: "monthly"},
	{Code: "JTSJOL", Name: "Job Openings (JOLTS)", Source: "FRED", Unit: "Thousands", Weekday: 2, Order: 4, Refresh: "monthly"},
	{Code: "CPIAUCSL", Name: "Consumer Price Index (CPI)", Source: "FRED", Unit: "Index", Weekday: 2, Order: 5, Refresh: "monthly"},
	{Code: "PCEPI", Name: "PCE Price Index", Source: "FRED", Unit: "Index", Weekday: 2, Order: 6, Refresh: "monthly"},
	{Code: "PCEPILFE", Name: "Core PCE Price Index", Source: "FRED", Unit: "Index", Weekday: 2, Order: 7, Refresh: "monthly"},
	{Code: "RSXFS", Name: "Retail Sales", Source: "FRED", Unit: "Millions $", Weekday: 2, Order: 8, Refresh: "monthly"},
	{Code: "INDPRO", Name: "Industrial Production Index", Source: "FRED", Unit: "Index", Weekday: 2, Order: 9, Refresh: "monthly"},
	{Code: "TCU", Name: "Capacity Utilization", Source: "FRED", Unit: "%", Weekday: 2, Order: 10, Refresh: "monthly"},

	// Thursday: Regional & Energy.
	{Code: "DCOILWTICO", Name: "Crude Oil Prices (WTI)", Source: "FRED", Unit: "$/Barrel", Weekday: 3, Order: 1, Refresh: "daily"},
	{Code: "DCOILBRENTEU", Name: "Crude Oil Prices (Brent)", Source: "FRED", Unit: "$/Barrel", Weekday: 3, Order: 2, Refresh: "daily"},
	{Code: "GASREGW", Name: "Gas Prices (Regular)", Source: "FRED", Unit: "$/Gallon", Weekday: 3, Order: 3, Refresh: "weekly"},
	{Code: "DHHNGSP", Name: "Natural Gas Prices", Source: "FRED", Unit: "$/Million BTU", Weekday: 3, Order: 4, Refresh: "daily"},
	{Code: "CAUR", Name: "California Unemployment Rate", Source: "FRED", Unit: "%", Weekday: 3, Order: 5, Refresh: "monthly"},
	{Code: "TXUR", Name: "Texas Unemployment Rate", Source: "FRED", Unit: "%", Weekday: 3, Order: 6, Refresh: "monthly"},
	{Code: "NYUR", Name: "New York Unemployment Rate", Source: "FRED", Unit: "%", Weekday: 3, Order: 7, Refresh: "monthly"},

	// Friday: Markets & Week Summary.
	{Code: "SP500", Name: "S&P 500 Index", Source: "FRED", Unit: "Index", Weekday: 4, Order: 1, Refresh: "daily"},
	{Code: "DEXUSEU", Name: "Dollar vs Euro Exchange Rate", Source: "FRED", Unit: "USD/EUR", Weekday: 4, Order: 2, Refresh: "daily"},
	{Code: "DEXCHUS", Name: "Dollar vs Yuan Exchange Rate", Source: "FRED", Unit: "CNY/USD", Weekday: 4, Order: 3, Refresh: "daily"},
	{Code: "DTWEXBGS", Name: "Trade Weighted Dollar Index", Source: "FRED", Unit: "Index", Weekday: 4, Order: 4, Refresh: "daily"},
	{Code: "VIXCLS", Name: "VIX Volatility Index", Source: "FRED", Unit: "Index", Weekday: 4, Order: 5, Refresh: "daily"},
	{Code: "BAMLH0A0HYM2", Name: "High Yield Bond Spread", Source: "FRED", Unit: "%", Weekday: 4, Order: 6, Refresh: "daily"},
	{Code: "T10YIE", Name: "10-Year Breakeven Inflation Rate", Source: "FRED", Unit: "%", Weekday: 4, Order: 7, Refresh: "daily"},
}
