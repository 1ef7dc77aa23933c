package prescriptions

import (
	"context"
	"errors"
	"monteluz-service/internal/app/services/shared/supabase"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSupabaseClient struct {
	rows     map[string][]map[string]interface{}
	err      error
	lastOpts *supabase.QueryOptions
}

func (s *stubSupabaseClient) Select(ctx context.Context, resource, filterField, filterValue string, opts *supabase.QueryOptions) ([]map[string]interface{}, error) {
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[resource], nil
}

func TestGetPrescriptionIDByAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns First Prescription ID", func(t *testing.T) {
		client := &stubSupabaseClient{rows: map[string][]map[string]interface{}{
			"prescriptions": {{"id": float64(7)}},
		}}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		prescriptionID := usecase.GetPrescriptionIDByAppointment(ctx, 42)

		assert.NotNil(t, prescriptionID)
		assert.Equal(t, int64(7), *prescriptionID)
		assert.NotNil(t, client.lastOpts)
		assert.Equal(t, "id", client.lastOpts.Select)
		assert.Equal(t, 1, client.lastOpts.Limit)
	})

	t.Run("No Prescription Yields Nil", func(t *testing.T) {
		client := &stubSupabaseClient{rows: map[string][]map[string]interface{}{}}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		assert.Nil(t, usecase.GetPrescriptionIDByAppointment(ctx, 42))
	})

	t.Run("Retrieval Failure Yields Nil", func(t *testing.T) {
		client := &stubSupabaseClient{err: errors.New("connection refused")}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		assert.Nil(t, usecase.GetPrescriptionIDByAppointment(ctx, 42))
	})

	t.Run("Malformed Row Yields Nil", func(t *testing.T) {
		client := &stubSupabaseClient{rows: map[string][]map[string]interface{}{
			"prescriptions": {{"id": "not-a-number"}},
		}}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		assert.Nil(t, usecase.GetPrescriptionIDByAppointment(ctx, 42))
	})
}

func TestGetPrescriptionItems(t *testing.T) {
	ctx := context.Background()

	t.Run("Maps Optional Fields", func(t *testing.T) {
		client := &stubSupabaseClient{rows: map[string][]map[string]interface{}{
			"prescription_items": {
				{
					"id":         float64(1),
					"medication": "Amoxicilina",
					"dosage":     "500mg",
					"frequency":  "Cada 8 horas",
					"duration":   "7 días",
					"notes":      "Tomar con alimentos",
				},
				{
					"id":         float64(2),
					"medication": "Paracetamol",
				},
			},
		}}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		items, err := usecase.GetPrescriptionItems(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, int64(7), items[0].PrescriptionID)
		assert.Equal(t, "Amoxicilina", *items[0].Medication)
		assert.Equal(t, "Tomar con alimentos", *items[0].Notes)
		assert.Equal(t, "Paracetamol", *items[1].Medication)
		assert.Nil(t, items[1].Dosage)
		assert.Nil(t, items[1].Notes)
	})

	t.Run("No Items Yields Empty Slice", func(t *testing.T) {
		client := &stubSupabaseClient{rows: map[string][]map[string]interface{}{}}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		items, err := usecase.GetPrescriptionItems(ctx, 7)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Retrieval Failure Propagates", func(t *testing.T) {
		client := &stubSupabaseClient{err: errors.New("timeout")}
		usecase := NewPrescriptionUsecase(client, zap.NewNop())

		items, err := usecase.GetPrescriptionItems(ctx, 7)

		assert.Nil(t, items)
		assert.Error(t, err)
	})
}
