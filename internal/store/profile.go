package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/profile"
	"github.com/adit/pathwise/ent/schema"
)

// defaultEmail identifies the local user until onboarding sets a real one.
const defaultEmail = "user@local"

// profileRepo implements ProfileRepo backed by ent.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Me(ctx context.Context) (*Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if ent.IsNotFound(err) {
		row, err = r.client.Profile.Create().
			SetEmail(defaultEmail).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profileFromEnt(row), nil
}

func (r *profileRepo) Update(ctx context.Context, p *Profile) (*Profile, error) {
	upd := r.client.Profile.Update().
		Where(profile.ID(p.ID), profile.Version(p.Version)).
		SetEmail(p.Email).
		SetFullName(p.FullName).
		SetAcademicInfo(p.AcademicInfo).
		SetPersonalBackground(p.PersonalBackground).
		SetCareerRecommendations(p.CareerRecommendations).
		SetAssessmentProgress(p.AssessmentProgress).
		SetIsMentor(p.IsMentor).
		SetVersion(p.Version + 1).
		SetUpdatedAt(p.UpdatedAt)
	if p.SelectedCareerPath != nil {
		upd.SetSelectedCareerPath(p.SelectedCareerPath)
	} else {
		upd.ClearSelectedCareerPath()
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return nil, ErrVersionConflict
	}

	row, err := r.client.Profile.Get(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return profileFromEnt(row), nil
}

func profileFromEnt(row *ent.Profile) *Profile {
	return &Profile{
		ID:                    row.ID,
		Email:                 row.Email,
		FullName:              row.FullName,
		AcademicInfo:          row.AcademicInfo,
		PersonalBackground:    row.PersonalBackground,
		CareerRecommendations: row.CareerRecommendations,
		SelectedCareerPath:    row.SelectedCareerPath,
		AssessmentProgress:    row.AssessmentProgress,
		IsMentor:              row.IsMentor,
		Version:               row.Version,
		UpdatedAt:             row.UpdatedAt,
	}
}

// ProfileSnapshot copies p so concurrent flows can mutate their own view
// before attempting an update.
func ProfileSnapshot(p *Profile) *Profile {
	cp := *p
	cp.CareerRecommendations = append([]schema.CareerRecommendation(nil), p.CareerRecommendations...)
	if p.SelectedCareerPath != nil {
		path := *p.SelectedCareerPath
		cp.SelectedCareerPath = &path
	}
	cp.AssessmentProgress.CompletedAssessments = append([]string(nil), p.AssessmentProgress.CompletedAssessments...)
	return &cp
}
