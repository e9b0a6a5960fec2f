package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"context"
)

type ProcedureService interface {
	GetAllProcedures(ctx context.Context) ([]models.Procedure, error)
}

type procedureService struct {
	procedureRepo repositories.ProcedureRepository
}

func NewProcedureService(procedureRepo repositories.ProcedureRepository) ProcedureService {
	return &procedureService{procedureRepo: procedureRepo}
}

func (s *procedureService) GetAllProcedures(ctx context.Context) ([]models.Procedure, error) {
	return s.procedureRepo.GetAll(ctx)
}
