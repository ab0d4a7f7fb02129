package service

import (
	"context"

	"radioapp/internal/models"
	"radioapp/internal/repository"
)

type ProgramService interface {
	CreateProgram(ctx context.Context, req repository.CreateProgramRequest) (*models.Program, error)
	UpdateProgram(ctx context.Context, req repository.UpdateProgramRequest) (*models.Program, error)
	DeleteProgram(ctx context.Context, programID int64) error
}

type programService struct {
	programRepo repository.ProgramRepository
}

func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func (s *programService) CreateProgram(ctx context.Context, req repository.CreateProgramRequest) (*models.Program, error) {
	program := &models.Program{
		Title:           req.Title,
		Description:     req.Description,
		AdministratorID: req.AdministratorID,
	}

	err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}

	return program, nil
}

func (s *programService) UpdateProgram(ctx context.Context, req repository.UpdateProgramRequest) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	program.Title = req.Title
	program.Description = req.Description

	if err = s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

func (s *programService) DeleteProgram(ctx context.Context, programID int64) error {
	return s.programRepo.Delete(ctx, programID)
}
