package store

import (
	"context"
	"testing"
	"time"

	"github.com/studycircle/studycircle/models"

	"github.com/stretchr/testify/require"
)

func seedProfileFixtures(t *testing.T, s *Store) {
	t.Helper()
	seedUser(t, s, "uid-1", "Tanaka")
	seedTech(t, s, 1, "Go")
	seedTech(t, s, 2, "TypeScript")
	seedTech(t, s, 3, "Rust")
}

func linkCounts(t *testing.T, s *Store, userID string) (interests, expertises, experiences int64) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.UserInterest{}).Where("user_id = ?", userID).Count(&interests).Error)
	require.NoError(t, s.db.Model(&models.UserExpertise{}).Where("user_id = ?", userID).Count(&expertises).Error)
	require.NoError(t, s.db.Model(&models.UserExperience{}).Where("user_id = ?", userID).Count(&experiences).Error)
	return
}

func TestUpdateProfileReplacesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedProfileFixtures(t, s)

	first := ProfileUpdate{
		SNSLink:     "https://twitter.com/tanaka",
		Comment:     "hello",
		JoinDate:    time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		Department:  "Platform",
		Interests:   []uint{1, 2},
		Expertises:  []models.TechYears{{TechnologyID: 1, Years: 5}},
		Experiences: []models.TechYears{{TechnologyID: 2, Years: 3}, {TechnologyID: 3, Years: 1}},
	}
	require.NoError(t, s.UpdateProfile(ctx, "uid-1", first))

	// A different replacement set leaves no residue from the first one.
	second := ProfileUpdate{
		SNSLink:    "https://github.com/tanaka",
		Comment:    "updated",
		JoinDate:   time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC),
		Department: "SRE",
		Interests:  []uint{3},
		Expertises: []models.TechYears{{TechnologyID: 2, Years: 2}},
	}
	require.NoError(t, s.UpdateProfile(ctx, "uid-1", second))

	user, err := s.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/tanaka", user.SNSLink)
	require.Equal(t, "updated", user.Comment)
	require.Equal(t, "SRE", user.Department)

	ni, nx, ne := linkCounts(t, s, "uid-1")
	require.EqualValues(t, 1, ni)
	require.EqualValues(t, 1, nx)
	require.EqualValues(t, 0, ne)

	var interest models.UserInterest
	require.NoError(t, s.db.First(&interest, "user_id = ?", "uid-1").Error)
	require.EqualValues(t, 3, interest.TechnologyID)
}

func TestUpdateProfileIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedProfileFixtures(t, s)

	upd := ProfileUpdate{
		SNSLink:    "https://example.com",
		JoinDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Department: "Dev",
		Interests:  []uint{1, 2},
		Expertises: []models.TechYears{{TechnologyID: 3, Years: 4}},
	}
	require.NoError(t, s.UpdateProfile(ctx, "uid-1", upd))
	require.NoError(t, s.UpdateProfile(ctx, "uid-1", upd))

	ni, nx, ne := linkCounts(t, s, "uid-1")
	require.EqualValues(t, 2, ni)
	require.EqualValues(t, 1, nx)
	require.EqualValues(t, 0, ne)
}

func TestUpdateProfileCollapsesDuplicateInterests(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedProfileFixtures(t, s)

	upd := ProfileUpdate{
		JoinDate:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Interests: []uint{1, 1, 2, 1},
	}
	require.NoError(t, s.UpdateProfile(ctx, "uid-1", upd))

	ni, _, _ := linkCounts(t, s, "uid-1")
	require.EqualValues(t, 2, ni)
}

func TestUpdateProfileRollsBackOnDuplicatePair(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedProfileFixtures(t, s)

	require.NoError(t, s.UpdateProfile(ctx, "uid-1", ProfileUpdate{
		SNSLink:    "https://example.com/before",
		JoinDate:   time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		Department: "Platform",
		Interests:  []uint{1},
		Expertises: []models.TechYears{{TechnologyID: 2, Years: 1}},
	}))

	// The second expertise pair repeats technology 3 and trips the unique
	// index mid-insert; the whole replacement must roll back.
	err := s.UpdateProfile(ctx, "uid-1", ProfileUpdate{
		SNSLink:  "https://example.com/after",
		JoinDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Expertises: []models.TechYears{
			{TechnologyID: 3, Years: 2},
			{TechnologyID: 3, Years: 7},
		},
	})
	require.ErrorIs(t, err, ErrConflict)

	user, getErr := s.GetUser(ctx, "uid-1")
	require.NoError(t, getErr)
	require.Equal(t, "https://example.com/before", user.SNSLink)
	require.Equal(t, "Platform", user.Department)

	ni, nx, ne := linkCounts(t, s, "uid-1")
	require.EqualValues(t, 1, ni)
	require.EqualValues(t, 1, nx)
	require.EqualValues(t, 0, ne)

	var expertise models.UserExpertise
	require.NoError(t, s.db.First(&expertise, "user_id = ?", "uid-1").Error)
	require.EqualValues(t, 2, expertise.TechnologyID)
	require.Equal(t, 1, expertise.ExpertiseYears)
}

func TestUpdateProfileMissingUser(t *testing.T) {
	s := newTestStore(t)
	seedTech(t, s, 1, "Go")

	err := s.UpdateProfile(context.Background(), "ghost", ProfileUpdate{
		JoinDate:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Interests: []uint{1},
	})
	require.ErrorIs(t, err, ErrNotFound)
}
