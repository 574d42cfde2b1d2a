package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"youngeru/internal/models/db_models"
)

const leadsTable = "leads"

// SupabaseLeadRepository writes leads through the Supabase REST API.
type SupabaseLeadRepository struct {
	client *supabase.Client
}

func NewSupabaseLeadRepository(url, key string) (*SupabaseLeadRepository, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase client: %w", err)
	}
	return &SupabaseLeadRepository{client: client}, nil
}

// Create assigns the id and timestamps itself since gorm hooks do not run.
func (r *SupabaseLeadRepository) Create(_ context.Context, lead *db_models.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	now := time.Now().Unix()
	lead.CreatedAt, lead.UpdatedAt = now, now

	if _, _, err := r.client.From(leadsTable).Insert(lead, false, "", "", "").Execute(); err != nil {
		return fmt.Errorf("supabase insert lead: %w", err)
	}
	return nil
}

func (r *SupabaseLeadRepository) ListAll(_ context.Context) ([]db_models.Lead, error) {
	var leads []db_models.Lead
	_, err := r.client.From(leadsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&leads)
	if err != nil {
		return nil, fmt.Errorf("supabase list leads: %w", err)
	}
	return leads, nil
}
