package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/logger"
	"tripplanner_backend/internal/models"
	"tripplanner_backend/internal/repositories"
	"tripplanner_backend/internal/services/dto"

	"github.com/lib/pq"
)

// PlanService aggregates the relational plan rows with the itinerary
// documents stored in the document store.
type PlanService interface {
	CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*models.Plan, error)
	GetPlans(ctx context.Context, filter dto.PlanFilter) ([]models.Plan, error)
	GetPlanWithItineraries(ctx context.Context, planID uint) (*dto.PlanWithItineraries, error)
	UpdatePlan(ctx context.Context, planID uint, req *dto.UpdatePlanRequest) (*models.Plan, error)
}

type PlanServiceImpl struct {
	planRepo      repositories.PlanRepository
	itineraryRepo repositories.ItineraryRepository
	userRepo      repositories.UserRepository
}

func NewPlanService(
	planRepo repositories.PlanRepository,
	itineraryRepo repositories.ItineraryRepository,
	userRepo repositories.UserRepository,
) PlanService {
	return &PlanServiceImpl{
		planRepo:      planRepo,
		itineraryRepo: itineraryRepo,
		userRepo:      userRepo,
	}
}

// CreatePlan inserts the itinerary documents one by one, then creates the
// plan row referencing them and links it to the owning user. Documents
// inserted before a failure are kept; their ids are logged so they can be
// cleaned up by hand.
func (s *PlanServiceImpl) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*models.Plan, error) {
	if req.Plan.UserID == 0 {
		return nil, apperrors.ValidationError("userId is required")
	}

	refs := make([]string, 0, len(req.Itineraries))
	for i := range req.Itineraries {
		id, err := s.itineraryRepo.Insert(ctx, &req.Itineraries[i])
		if err != nil {
			logger.CtxWithError(ctx, "itinerary insert failed, earlier documents are orphaned", err,
				"inserted", refs)
			return nil, apperrors.PersistenceError("failed to save itineraries", err)
		}
		refs = append(refs, id)
	}

	plan := &models.Plan{
		Name:              req.Plan.Name,
		Description:       req.Plan.Description,
		TotalDays:         len(refs),
		Itineraries:       pq.StringArray(refs),
		ImageUrls:         pq.StringArray(req.Plan.ImageUrls),
		SelectedCountries: pq.StringArray(req.Plan.SelectedCountries),
		Accommodations:    pq.StringArray(req.Plan.Accommodations),
		Seasons:           pq.StringArray(req.Plan.Seasons),
		TotalPrice:        req.Plan.TotalPrice,
		TotalCost:         req.Plan.TotalCost,
		Sell:              req.Plan.Sell,
		UserID:            req.Plan.UserID,
	}

	if err := s.planRepo.Create(plan); err != nil {
		logger.CtxWithError(ctx, "plan insert failed, itinerary documents are orphaned", err,
			"inserted", refs)
		return nil, apperrors.PersistenceError("failed to create plan", err)
	}

	if err := s.userRepo.LinkPlan(req.Plan.UserID, plan); err != nil {
		logger.CtxWithError(ctx, "failed to link plan to user", err,
			"planId", plan.ID, "userId", req.Plan.UserID)
		return nil, apperrors.PersistenceError("failed to link plan to user", err)
	}

	logger.CtxInfo(ctx, "plan created", "planId", plan.ID, "itineraries", len(refs))
	return plan, nil
}

// GetPlans returns plans matching every provided criterion, sorted by the
// requested option.
func (s *PlanServiceImpl) GetPlans(ctx context.Context, filter dto.PlanFilter) ([]models.Plan, error) {
	plans, err := s.planRepo.FindBySell(filter.Sell)
	if err != nil {
		return nil, apperrors.PersistenceError("failed to load plans", err)
	}

	matched := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if matchesFilter(&p, filter) {
			matched = append(matched, p)
		}
	}

	sortPlans(matched, filter.SortOption, filter.IsAscending)
	return matched, nil
}

func matchesFilter(p *models.Plan, f dto.PlanFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if len(f.Countries) > 0 && !intersects(p.SelectedCountries, f.Countries) {
		return false
	}
	if len(f.Seasons) > 0 && !intersects(p.Seasons, f.Seasons) {
		return false
	}
	if len(f.Accommodations) > 0 && !intersects(p.Accommodations, f.Accommodations) {
		return false
	}
	if p.TotalPrice < f.BudgetMin || p.TotalPrice > f.BudgetMax {
		return false
	}
	if p.TotalDays < f.DaysMin || p.TotalDays > f.DaysMax {
		return false
	}
	return true
}

func intersects(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func sortPlans(plans []models.Plan, option string, ascending bool) {
	less := func(a, b *models.Plan) bool {
		switch option {
		case "price":
			return a.TotalPrice < b.TotalPrice
		case "days":
			return a.TotalDays < b.TotalDays
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if ascending {
			return less(&plans[i], &plans[j])
		}
		return less(&plans[j], &plans[i])
	})
}

// GetPlanWithItineraries loads the plan row and fetches its referenced
// documents concurrently. References that no longer resolve are dropped
// from the result; the remaining documents keep the plan's ordering.
func (s *PlanServiceImpl) GetPlanWithItineraries(ctx context.Context, planID uint) (*dto.PlanWithItineraries, error) {
	plan, err := s.planRepo.FindByID(planID)
	if err != nil {
		if err == repositories.ErrPlanNotFound {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.PersistenceError("failed to load plan", err)
	}

	results := make([]*models.Itinerary, len(plan.Itineraries))
	var wg sync.WaitGroup
	for i, ref := range plan.Itineraries {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			doc, err := s.itineraryRepo.FindByID(ctx, ref)
			if err != nil {
				logger.CtxWarn(ctx, "skipping unresolvable itinerary reference",
					"planId", planID, "itineraryId", ref, "error", err.Error())
				return
			}
			results[i] = doc
		}(i, ref)
	}
	wg.Wait()

	itineraries := make([]models.Itinerary, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			itineraries = append(itineraries, *doc)
		}
	}

	return &dto.PlanWithItineraries{Plan: plan, Itineraries: itineraries}, nil
}

// UpdatePlan rewrites the plan fields and reconciles its itinerary list.
// Each entry is either a reference to keep, a document to replace in place,
// or a new document to insert. TotalDays is left untouched.
func (s *PlanServiceImpl) UpdatePlan(ctx context.Context, planID uint, req *dto.UpdatePlanRequest) (*models.Plan, error) {
	refs := make([]string, 0, len(req.Itineraries))
	for i := range req.Itineraries {
		in := &req.Itineraries[i]
		switch in.Kind {
		case dto.ItineraryRef:
			refs = append(refs, in.ID)
		case dto.ItineraryReplace:
			if err := s.itineraryRepo.Replace(ctx, in.ID, &in.Itinerary); err != nil {
				return nil, apperrors.PersistenceError("failed to update itinerary", err)
			}
			refs = append(refs, in.ID)
		case dto.ItineraryNew:
			id, err := s.itineraryRepo.Insert(ctx, &in.Itinerary)
			if err != nil {
				return nil, apperrors.PersistenceError("failed to save itinerary", err)
			}
			refs = append(refs, id)
		}
	}

	fields := map[string]interface{}{
		"name":               req.Plan.Name,
		"description":        req.Plan.Description,
		"itineraries":        pq.StringArray(refs),
		"image_urls":         pq.StringArray(req.Plan.ImageUrls),
		"selected_countries": pq.StringArray(req.Plan.SelectedCountries),
		"accommodations":     pq.StringArray(req.Plan.Accommodations),
		"seasons":            pq.StringArray(req.Plan.Seasons),
		"total_price":        req.Plan.TotalPrice,
		"total_cost":         req.Plan.TotalCost,
		"sell":               req.Plan.Sell,
	}

	if err := s.planRepo.Update(planID, fields); err != nil {
		return nil, apperrors.PersistenceError("failed to update plan", err)
	}

	plan, err := s.planRepo.FindByID(planID)
	if err != nil {
		return nil, apperrors.PersistenceError("failed to reload plan", err)
	}

	logger.CtxInfo(ctx, "plan updated", "planId", planID, "itineraries", len(refs))
	return plan, nil
}
