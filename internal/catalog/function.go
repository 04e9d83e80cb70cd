package catalog

import "strings"

// Function is the closed set of lookups the router may select.
type Function int

const (
	FunctionUnknown Function = iota
	FunctionCountProducts
	FunctionBestSellingProduct
	FunctionProductDetails
	FunctionCountJobs
	FunctionJobsByCategory
	FunctionCompanyJobs
)

// Parameter keys accepted on the wire.
const (
	ParamProductName = "productName"
	ParamCategory    = "category"
	ParamCompanyName = "companyName"
)

var functionNames = map[Function]string{
	FunctionCountProducts:      "countProducts",
	FunctionBestSellingProduct: "bestSellingProduct",
	FunctionProductDetails:     "productDetails",
	FunctionCountJobs:          "countJobs",
	FunctionJobsByCategory:     "jobsByCategory",
	FunctionCompanyJobs:        "companyJobs",
}

// functionAliases holds the snake_case names older prompts produced.
var functionAliases = map[string]Function{
	"get_total_products":       FunctionCountProducts,
	"get_best_selling_product": FunctionBestSellingProduct,
	"get_product_details":      FunctionProductDetails,
	"get_total_jobs":           FunctionCountJobs,
	"get_jobs_by_category":     FunctionJobsByCategory,
	"get_company_jobs":         FunctionCompanyJobs,
}

var paramAliases = map[string]string{
	"product_name": ParamProductName,
	"company_name": ParamCompanyName,
}

// Functions lists the allow-list in prompt order.
func Functions() []Function {
	return []Function{
		FunctionCountProducts,
		FunctionBestSellingProduct,
		FunctionProductDetails,
		FunctionCountJobs,
		FunctionJobsByCategory,
		FunctionCompanyJobs,
	}
}

// String returns the wire name, or "unknown".
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFunction maps a wire name or legacy alias to a Function.
// Anything else is FunctionUnknown.
func ParseFunction(name string) Function {
	name = strings.TrimSpace(name)
	for f, wire := range functionNames {
		if wire == name {
			return f
		}
	}
	if f, ok := functionAliases[name]; ok {
		return f
	}
	return FunctionUnknown
}

// RequiredParam returns the parameter key f cannot run without.
func (f Function) RequiredParam() (string, bool) {
	switch f {
	case FunctionProductDetails:
		return ParamProductName, true
	case FunctionJobsByCategory:
		return ParamCategory, true
	case FunctionCompanyJobs:
		return ParamCompanyName, true
	default:
		return "", false
	}
}

// NormalizeParamKey folds legacy parameter keys onto the wire keys.
func NormalizeParamKey(key string) string {
	if canonical, ok := paramAliases[key]; ok {
		return canonical
	}
	return key
}
