package seed

import "github.com/pageza/moodbites/backend/internal/models"

// SampleRecipes returns the built-in sample set, one recipe per mood.
// A fresh slice is returned on every call.
func SampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:         "Comforting Mac and Cheese",
			Ingredients:  "Macaroni, cheddar cheese, milk, butter, flour, breadcrumbs",
			Instructions: "1. Cook macaroni\n2. Make cheese sauce\n3. Combine and bake",
			Mood:         "sad",
			PrepTime:     30,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryVegetarian,
		},
		{
			Name:         "Energizing Smoothie Bowl",
			Ingredients:  "Banana, berries, yogurt, granola, honey, chia seeds",
			Instructions: "1. Blend fruits with yogurt\n2. Top with granola and seeds",
			Mood:         "happy",
			PrepTime:     10,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryVegetarian,
		},
		{
			Name:         "Spicy Chicken Tacos",
			Ingredients:  "Chicken, tortillas, spices, lime, cilantro, hot sauce",
			Instructions: "1. Season and cook chicken\n2. Warm tortillas\n3. Assemble tacos",
			Mood:         "excited",
			PrepTime:     25,
			Difficulty:   models.DifficultyMedium,
			Dietary:      models.DietaryMeat,
		},
		{
			Name:         "Calming Chamomile Tea Cookies",
			Ingredients:  "Flour, butter, sugar, chamomile tea, vanilla, eggs",
			Instructions: "1. Mix ingredients\n2. Shape cookies\n3. Bake until golden",
			Mood:         "anxious",
			PrepTime:     45,
			Difficulty:   models.DifficultyMedium,
			Dietary:      models.DietaryVegetarian,
		},
		{
			Name:         "Cozy Chicken Soup",
			Ingredients:  "Chicken, vegetables, broth, herbs, noodles",
			Instructions: "1. Simmer chicken and vegetables\n2. Add noodles\n3. Season to taste",
			Mood:         "sick",
			PrepTime:     60,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryMeat,
		},
		{
			Name:         "Chocolate Lava Cake",
			Ingredients:  "Dark chocolate, butter, eggs, sugar, flour",
			Instructions: "1. Melt chocolate and butter\n2. Mix ingredients\n3. Bake until edges are set",
			Mood:         "romantic",
			PrepTime:     20,
			Difficulty:   models.DifficultyMedium,
			Dietary:      models.DietaryVegetarian,
		},
		{
			Name:         "Fresh Garden Salad",
			Ingredients:  "Mixed greens, tomatoes, cucumber, avocado, lemon, olive oil",
			Instructions: "1. Wash and chop vegetables\n2. Make dressing\n3. Toss and serve",
			Mood:         "refreshed",
			PrepTime:     15,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryVegan,
		},
		{
			Name:         "Warm Apple Cinnamon Oatmeal",
			Ingredients:  "Oats, apple, cinnamon, honey, milk, nuts",
			Instructions: "1. Cook oats with milk\n2. Add chopped apple and cinnamon\n3. Top with honey and nuts",
			Mood:         "cozy",
			PrepTime:     15,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryVegetarian,
		},
		{
			Name:         "Spicy Ramen Bowl",
			Ingredients:  "Ramen noodles, broth, chili, garlic, green onions, egg",
			Instructions: "1. Cook noodles\n2. Prepare spicy broth\n3. Add toppings and serve",
			Mood:         "adventurous",
			PrepTime:     20,
			Difficulty:   models.DifficultyMedium,
			Dietary:      models.DietaryMeat,
		},
		{
			Name:         "Lemon Blueberry Muffins",
			Ingredients:  "Flour, sugar, eggs, milk, lemon, blueberries, butter",
			Instructions: "1. Mix dry and wet ingredients\n2. Fold in blueberries\n3. Bake until golden",
			Mood:         "cheerful",
			PrepTime:     35,
			Difficulty:   models.DifficultyEasy,
			Dietary:      models.DietaryVegetarian,
		},
	}
}
