package store

import (
	"context"

	"appointment-booking-api/internal/model"
)

const appointmentColumns = `id, customer_name, customer_email, customer_phone,
        appointment_date::text, appointment_time::text,
        service, notes, status, created_at, updated_at`

// ListAppointments returns every row, newest scheduling date first. The
// ordering is a plain descending sort and includes past dates.
func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments
		 ORDER BY appointment_date DESC, appointment_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.CustomerName, &a.CustomerEmail, &a.CustomerPhone,
			&a.AppointmentDate, &a.AppointmentTime,
			&a.Service, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments
		   (customer_name, customer_email, customer_phone,
		    appointment_date, appointment_time, service, notes)
		 VALUES ($1,$2,$3,$4::date,$5::time,$6,$7)
		 RETURNING id`,
		a.CustomerName, a.CustomerEmail, a.CustomerPhone,
		a.AppointmentDate, a.AppointmentTime, a.Service, a.Notes,
	).Scan(&a.ID)
}

// UpdateAppointment overwrites every column. Last writer wins; there is
// no version check.
func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments
		 SET customer_name=$1, customer_email=$2, customer_phone=$3,
		     appointment_date=$4::date, appointment_time=$5::time,
		     service=$6, notes=$7, status=$8, updated_at=NOW()
		 WHERE id=$9`,
		a.CustomerName, a.CustomerEmail, a.CustomerPhone,
		a.AppointmentDate, a.AppointmentTime, a.Service, a.Notes, a.Status, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET status=$1, updated_at=NOW() WHERE id=$2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
