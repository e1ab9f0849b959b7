package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmtsurvey/backend/internal/models"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// InsertSurvey persists one record and returns the server-assigned id. The
// id is generated by the database; the application never produces one.
func (s *Store) InsertSurvey(ctx context.Context, rec models.SurveyRecord) (string, error) {
	var id string
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO bmt_surveys (
			submission_date, created_at,
			salesperson_name, salesperson_contact, salesperson_email, territory,
			physician_name, physician_specialization, facility_name, facility_type,
			city, state, facility_contact, facility_email,
			monthly_bmt_patients, annual_bmt_patients, autologous_percentage,
			allogeneic_percentage, average_patient_age, pediatric_percentage,
			all_patients, aml_patients, cll_patients, cml_patients,
			multiple_myeloma_patients, lymphoma_patients, aplastic_anemia_patients,
			other_blood_disorders, solid_tumor_patients,
			treatment_protocols, challenges, new_therapy_interest, additional_notes
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
			$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33
		) RETURNING id`,
		rec.SubmissionDate, rec.CreatedAt,
		rec.SalespersonName, rec.SalespersonContact, rec.SalespersonEmail, rec.Territory,
		rec.PhysicianName, rec.PhysicianSpecialization, rec.FacilityName, rec.FacilityType,
		rec.City, rec.State, rec.FacilityContact, rec.FacilityEmail,
		rec.MonthlyBMTPatients, rec.AnnualBMTPatients, rec.AutologousPercentage,
		rec.AllogeneicPercentage, rec.AveragePatientAge, rec.PediatricPercentage,
		rec.ALLPatients, rec.AMLPatients, rec.CLLPatients, rec.CMLPatients,
		rec.MultipleMyelomaPatients, rec.LymphomaPatients, rec.AplasticAnemiaPatients,
		rec.OtherBloodDisorders, rec.SolidTumorPatients,
		rec.TreatmentProtocols, rec.Challenges, rec.NewTherapyInterest, rec.AdditionalNotes,
	).Scan(&id)
	return id, err
}

// ListSurveys returns every record, newest first.
func (s *Store) ListSurveys(ctx context.Context) ([]models.SurveyRecord, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, submission_date, created_at,
			salesperson_name, salesperson_contact, salesperson_email, territory,
			physician_name, physician_specialization, facility_name, facility_type,
			city, state, facility_contact, facility_email,
			monthly_bmt_patients, annual_bmt_patients, autologous_percentage,
			allogeneic_percentage, average_patient_age, pediatric_percentage,
			all_patients, aml_patients, cll_patients, cml_patients,
			multiple_myeloma_patients, lymphoma_patients, aplastic_anemia_patients,
			other_blood_disorders, solid_tumor_patients,
			treatment_protocols, challenges, new_therapy_interest, additional_notes
		FROM bmt_surveys
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SurveyRecord
	for rows.Next() {
		var r models.SurveyRecord
		if err := rows.Scan(
			&r.ID, &r.SubmissionDate, &r.CreatedAt,
			&r.SalespersonName, &r.SalespersonContact, &r.SalespersonEmail, &r.Territory,
			&r.PhysicianName, &r.PhysicianSpecialization, &r.FacilityName, &r.FacilityType,
			&r.City, &r.State, &r.FacilityContact, &r.FacilityEmail,
			&r.MonthlyBMTPatients, &r.AnnualBMTPatients, &r.AutologousPercentage,
			&r.AllogeneicPercentage, &r.AveragePatientAge, &r.PediatricPercentage,
			&r.ALLPatients, &r.AMLPatients, &r.CLLPatients, &r.CMLPatients,
			&r.MultipleMyelomaPatients, &r.LymphomaPatients, &r.AplasticAnemiaPatients,
			&r.OtherBloodDisorders, &r.SolidTumorPatients,
			&r.TreatmentProtocols, &r.Challenges, &r.NewTherapyInterest, &r.AdditionalNotes,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
