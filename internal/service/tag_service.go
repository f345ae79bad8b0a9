package service

import (
	"context"
	"strings"

	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// tagService is the concrete implementation of TagService
type tagService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTagService(repos *repository.Repositories, log zerolog.Logger) TagService {
	return &tagService{
		repos: repos,
		log:   log.With().Str("service", "tag").Logger(),
	}
}

// GetAll returns every tag
func (s *tagService) GetAll(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.repos.Tag.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags, nil
}

// Update renames the tag in place. Returns ErrDuplicateTagName when another
// tag already has the requested name, and the refreshed profile otherwise.
func (s *tagService) Update(ctx context.Context, email string, tag *models.Tag) (*models.Profile, error) {
	name := strings.ToLower(strings.TrimSpace(tag.Name))

	exists, err := s.repos.Tag.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTagName
	}

	if err := s.repos.Tag.Rename(ctx, tag.ID, name); err != nil {
		return nil, err
	}

	s.log.Info().Str("tag_id", tag.ID).Str("name", name).Msg("Tag renamed")
	return buildProfile(ctx, s.repos, email)
}

// Remove deletes the tag unless a question not owned by the requester still
// uses it, detaching it from the account and from every question. Returns
// the refreshed profile.
func (s *tagService) Remove(ctx context.Context, email, id string) (*models.Profile, error) {
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		tag, err := r.Tag.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if tag == nil {
			return ErrNotFound
		}

		inUse, err := tagUsedByOthers(ctx, r, email, id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrTagInUse
		}
		return removeTagCascade(ctx, r, email, id)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("tag_id", id).Msg("Tag removed")
	return buildProfile(ctx, s.repos, email)
}

// Edit is the read-only variant of the removal check: it returns the tag
// when no other user's question uses it, and ErrTagInUse otherwise.
func (s *tagService) Edit(ctx context.Context, email, id string) (*models.Tag, error) {
	tag, err := s.repos.Tag.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}

	inUse, err := tagUsedByOthers(ctx, s.repos, email, id)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrTagInUse
	}
	return tag, nil
}
