package usecase

import (
	"context"
	"fmt"

	"jobfinder-chatbot/internal/catalog"
	"jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/internal/router"
)

// dispatch runs the lookup named by call and renders its Context sentence.
// Missing parameters and unknown functions are not errors: they produce fixed
// sentences. Only a failing store is.
func (uc *implUseCase) dispatch(ctx context.Context, call router.FunctionCall) (string, error) {
	if key, required := call.Function.RequiredParam(); required {
		if _, ok := call.Param(key); !ok {
			uc.l.Warnf(ctx, "%s: %s called without %s", LogPrefixDispatch, call.Function, key)
			uc.metrics.ObserveLookup(call.Function.String(), lookupMissingParam)
			return missingParamContext(call.Function), nil
		}
	}

	text, result, err := uc.lookup(ctx, call)
	if err != nil {
		uc.metrics.ObserveLookup(call.Function.String(), lookupError)
		return "", err
	}

	uc.metrics.ObserveLookup(call.Function.String(), result)
	uc.l.Debugf(ctx, "%s: %s -> %s", LogPrefixDispatch, call.Function, result)
	return text, nil
}

func (uc *implUseCase) lookup(ctx context.Context, call router.FunctionCall) (string, string, error) {
	switch call.Function {
	case catalog.FunctionCountProducts:
		total, err := uc.repo.CountProducts(ctx)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf(ContextTotalProducts, total), lookupFound, nil

	case catalog.FunctionBestSellingProduct:
		p, err := uc.repo.GetBestSellingProduct(ctx)
		if err != nil {
			return "", "", err
		}
		if !p.Found() {
			return ContextNoBestSelling, lookupNotFound, nil
		}
		return fmt.Sprintf(ContextBestSelling, p.Name, p.SalesCount), lookupFound, nil

	case catalog.FunctionProductDetails:
		name, _ := call.Param(catalog.ParamProductName)
		p, err := uc.repo.GetProduct(ctx, repository.GetProductOptions{Name: name})
		if err != nil {
			return "", "", err
		}
		if !p.Found() {
			return fmt.Sprintf(ContextProductNotFound, name), lookupNotFound, nil
		}
		return renderProduct(p), lookupFound, nil

	case catalog.FunctionCountJobs:
		total, err := uc.repo.CountJobs(ctx)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf(ContextTotalJobs, total), lookupFound, nil

	case catalog.FunctionJobsByCategory:
		category, _ := call.Param(catalog.ParamCategory)
		jobs, err := uc.repo.ListJobs(ctx, repository.ListJobsOptions{Category: category})
		if err != nil {
			return "", "", err
		}
		if len(jobs) == 0 {
			return fmt.Sprintf(ContextNoCategoryJobs, category), lookupNotFound, nil
		}
		return fmt.Sprintf(ContextCategoryJobs, category, renderJobs(jobs)), lookupFound, nil

	case catalog.FunctionCompanyJobs:
		company, _ := call.Param(catalog.ParamCompanyName)
		jobs, err := uc.repo.ListJobs(ctx, repository.ListJobsOptions{CompanyName: company})
		if err != nil {
			return "", "", err
		}
		if len(jobs) == 0 {
			return fmt.Sprintf(ContextNoCompanyJobs, company), lookupNotFound, nil
		}
		return fmt.Sprintf(ContextCompanyJobs, company, renderJobs(jobs)), lookupFound, nil

	default:
		uc.l.Warnf(ctx, "%s: unrecognized function %q", LogPrefixDispatch, call.Name)
		return ContextMappingFailure, lookupUnknownFunction, nil
	}
}

func missingParamContext(fn catalog.Function) string {
	switch fn {
	case catalog.FunctionProductDetails:
		return ContextMissingProductName
	case catalog.FunctionJobsByCategory:
		return ContextMissingCategory
	case catalog.FunctionCompanyJobs:
		return ContextMissingCompanyName
	default:
		return ContextMappingFailure
	}
}
