package exercises

import "time"

// FixtureSnapshot is the last-resort catalog used when both the remote
// catalog and the disk snapshot are unavailable. It is a small but varied
// set so recommendations stay meaningful offline.
func FixtureSnapshot() Snapshot {
	return Snapshot{
		Exercises: fixtureExercises(),
		FetchedAt: time.Now().UTC(),
		Source:    SourceFixture,
	}
}

func fixtureExercises() []Exercise {
	return []Exercise{
		{
			ID:             "gentle-neck-rotations",
			Name:           "Gentle Neck Rotations",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "stretching",
			PrimaryMuscles: []string{"neck"},
			Instructions: []string{
				"Sit or stand tall with relaxed shoulders.",
				"Slowly turn your head to one side until you feel a light stretch.",
				"Hold briefly, return to center, and repeat on the other side.",
			},
		},
		{
			ID:             "seated-hamstring-stretch",
			Name:           "Seated Hamstring Stretch",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "stretching",
			PrimaryMuscles: []string{"hamstrings"},
			SecondaryMuscles: []string{
				"calves", "lower back",
			},
			Instructions: []string{
				"Sit on the edge of a chair with one leg extended.",
				"Hinge forward from the hips until you feel a gentle stretch.",
				"Hold, then switch legs.",
			},
		},
		{
			ID:             "glute-bridge",
			Name:           "Glute Bridge",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "strength",
			PrimaryMuscles: []string{"glutes"},
			SecondaryMuscles: []string{
				"hamstrings", "lower back",
			},
			Instructions: []string{
				"Lie on your back with knees bent and feet flat.",
				"Press through your heels and lift your hips.",
				"Lower with control and repeat.",
			},
		},
		{
			ID:             "standing-balance-hold",
			Name:           "Standing Single Leg Balance",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "stretching",
			PrimaryMuscles: []string{"calves"},
			Instructions: []string{
				"Stand near a wall or counter for support.",
				"Lift one foot and hold your balance.",
				"Switch sides after 20 to 30 seconds.",
			},
		},
		{
			ID:             "slow-march-in-place",
			Name:           "Slow March in Place",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "cardio",
			PrimaryMuscles: []string{"quadriceps"},
			SecondaryMuscles: []string{
				"calves",
			},
			Instructions: []string{
				"March in place at a slow, even pace.",
				"Swing your arms naturally and breathe steadily.",
			},
		},
		{
			ID:             "wall-push-up",
			Name:           "Wall Push-Up",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "strength",
			PrimaryMuscles: []string{"chest"},
			SecondaryMuscles: []string{
				"shoulders", "triceps",
			},
			Instructions: []string{
				"Stand an arm's length from a wall with palms flat against it.",
				"Bend your elbows to bring your chest toward the wall.",
				"Press back to the start position.",
			},
		},
		{
			ID:             "cat-cow",
			Name:           "Cat Cow",
			Level:          "beginner",
			Equipment:      "body only",
			Category:       "stretching",
			PrimaryMuscles: []string{"lower back"},
			SecondaryMuscles: []string{
				"abdominals",
			},
			Instructions: []string{
				"Start on hands and knees with a flat back.",
				"Alternate between arching and rounding your spine.",
				"Move slowly with your breathing.",
			},
		},
		{
			ID:             "dumbbell-goblet-squat",
			Name:           "Dumbbell Goblet Squat",
			Level:          "intermediate",
			Equipment:      "dumbbell",
			Category:       "strength",
			PrimaryMuscles: []string{"quadriceps"},
			SecondaryMuscles: []string{
				"glutes", "hamstrings",
			},
			Instructions: []string{
				"Hold a dumbbell at chest height with both hands.",
				"Squat down keeping your chest tall.",
				"Drive through your heels to stand.",
			},
		},
	}
}
