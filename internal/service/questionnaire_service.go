package service

import (
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
)

type QuestionnaireService interface {
	GetAll() *model.QuestionnaireSet
	GetByMonth(month int) (*model.Questionnaire, error)
}

type questionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepository
}

func NewQuestionnaireService(questionnaireRepo repository.QuestionnaireRepository) QuestionnaireService {
	return &questionnaireService{questionnaireRepo: questionnaireRepo}
}

func (s *questionnaireService) GetAll() *model.QuestionnaireSet {
	return s.questionnaireRepo.FindAll()
}

func (s *questionnaireService) GetByMonth(month int) (*model.Questionnaire, error) {
	return s.questionnaireRepo.FindByMonth(month)
}
