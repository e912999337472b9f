package postgres

import (
	"database/sql"

	"deckhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.LeadRepository
	repository.ProfileRepository
	repository.GrantRepository
	repository.AccessRequestRepository
	repository.NotificationRepository
	repository.ReadStatusRepository
	repository.ReviewRepository
	repository.TaskRepository
	repository.ProcedureRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		LeadRepository:          NewLeadRepository(db),
		ProfileRepository:       NewProfileRepository(db),
		GrantRepository:         NewGrantRepository(db),
		AccessRequestRepository: NewAccessRequestRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		ReadStatusRepository:    NewReadStatusRepository(db),
		ReviewRepository:        NewReviewRepository(db),
		TaskRepository:          NewTaskRepository(db),
		ProcedureRepository:     NewProcedureRepository(db),
	}
}
