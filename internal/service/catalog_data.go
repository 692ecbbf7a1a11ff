package service

import "github.com/nutridiary/backend/internal/model"

// defaultProfiles is the built-in food catalog. Raw ingredients are per
// 100g; processed items carry their own serving unit.
var defaultProfiles = []model.FoodProfile{
	{Name: "Apple (raw)", Unit: "100g", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fibre: 2.4, ImageURL: "https://placehold.co/40x40/a8f3b0/065f46?text=apple"},
	{Name: "Banana (raw)", Unit: "100g", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fibre: 2.6, ImageURL: "https://placehold.co/40x40/fff3a8/a16207?text=banana"},
	{Name: "Orange (raw)", Unit: "100g", Calories: 47, Protein: 0.9, Carbs: 11.8, Fat: 0.1, Fibre: 2.4, ImageURL: "https://placehold.co/40x40/ffedd5/c2410c?text=orange"},
	{Name: "Grapes (raw)", Unit: "100g", Calories: 69, Protein: 0.6, Carbs: 18.1, Fat: 0.2, Fibre: 0.9, ImageURL: "https://placehold.co/40x40/d8b4fe/581c87?text=grapes"},
	{Name: "Strawberries (raw)", Unit: "100g", Calories: 33, Protein: 0.7, Carbs: 7.7, Fat: 0.3, Fibre: 2, ImageURL: "https://placehold.co/40x40/fecaca/9f1239?text=berry"},
	{Name: "Carrot (raw)", Unit: "100g", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fibre: 2.8, ImageURL: "https://placehold.co/40x40/fed7aa/ea580c?text=carrot"},
	{Name: "Milk (whole, raw)", Unit: "100g", Calories: 61, Protein: 3.3, Carbs: 4.7, Fat: 3.3, Fibre: 0, ImageURL: "https://placehold.co/40x40/bfdbfe/172554?text=milk"},
	{Name: "Egg (raw)", Unit: "100g", Calories: 155, Protein: 12.6, Carbs: 1.1, Fat: 10.6, Fibre: 0, ImageURL: "https://placehold.co/40x40/fef9c3/b45309?text=egg"},
	{Name: "Olive Oil (raw)", Unit: "100g", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fibre: 0, ImageURL: "https://placehold.co/40x40/d9f991/3f6212?text=oil"},
	{Name: "Avocado (raw)", Unit: "100g", Calories: 160, Protein: 2, Carbs: 9, Fat: 14.7, Fibre: 6.7, ImageURL: "https://placehold.co/40x40/d9f991/3f6212?text=avocado"},
	{Name: "Lentils (dry, raw)", Unit: "100g", Calories: 352, Protein: 24.6, Carbs: 63.4, Fat: 1.1, Fibre: 15.6, ImageURL: "https://placehold.co/40x40/fecaca/9f1239?text=lentils"},
	{Name: "Myprotein Impact Whey Protein (1 scoop)", Unit: "scoop", Calories: 130, Protein: 25, Carbs: 3, Fat: 2, Fibre: 0.3, ImageURL: "https://placehold.co/40x40/bfdbfe/172554?text=whey"},
	{Name: "Lean cookie", Unit: "piece", Calories: 190, Protein: 25, Carbs: 14, Fat: 3.6, Fibre: 1.5, ImageURL: "https://placehold.co/40x40/fef9c3/b45309?text=cookie"},
	{Name: "Chicken Breast (raw)", Unit: "100g", Calories: 128, Protein: 26, Carbs: 0, Fat: 2, Fibre: 0, ImageURL: "https://placehold.co/40x40/fecaca/9f1239?text=chicken"},
	{Name: "White Rice (raw)", Unit: "100g", Calories: 336, Protein: 8, Carbs: 76, Fat: 0, Fibre: 1, ImageURL: "https://placehold.co/40x40/d1d5db/4b5563?text=rice"},
	{Name: "Indian Dal Fry (cooked)", Unit: "100g", Calories: 100, Protein: 5, Carbs: 14, Fat: 3, Fibre: 3, ImageURL: "https://placehold.co/40x40/fef9c3/b45309?text=dal"},
	{Name: "Mejdool Dates (raw)", Unit: "100g", Calories: 277, Protein: 1.8, Carbs: 75, Fat: 0.2, Fibre: 6.7, ImageURL: "https://placehold.co/40x40/fecaca/9f1239?text=dates"},
	{Name: "Curd", Unit: "100g", Calories: 62, Protein: 4, Carbs: 4.4, Fat: 3.1, Fibre: 0, ImageURL: "https://placehold.co/40x40/bfdbfe/172554?text=curd"},
	{Name: "Oats (raw)", Unit: "100g", Calories: 336, Protein: 8, Carbs: 76, Fat: 0, Fibre: 10, ImageURL: "https://placehold.co/40x40/fef9c3/b45309?text=oats"},
	{Name: "Omega 3", Unit: "softgel", Calories: 9, Protein: 0, Carbs: 0, Fat: 1, Fibre: 0, ImageURL: "https://placehold.co/40x40/a8f3b0/065f46?text=omega3"},
	{Name: "Multivitamin", Unit: "piece", Calories: 0, Protein: 0, Carbs: 0, Fat: 0, Fibre: 0, ImageURL: "https://placehold.co/40x40/a8f3b0/065f46?text=vits"},
	{Name: "Ghee/Butter/Coconut Oil Blend", Unit: "5ml", Calories: 45, Protein: 0, Carbs: 0, Fat: 5, Fibre: 0, ImageURL: "https://placehold.co/40x40/fef9c3/b45309?text=ghee"},
}

// mealSuggestions seeds the empty-query search state per meal slot.
var mealSuggestions = map[model.MealType][]string{
	model.MealBreakfast: {"Myprotein Impact Whey Protein (1 scoop)", "Apple (raw)", "Banana (raw)", "Curd", "Multivitamin", "Omega 3"},
	model.MealLunch:     {"White Rice (raw)", "Chicken Breast (raw)", "Indian Dal Fry (cooked)", "Carrot (raw)", "Curd", "Ghee/Butter/Coconut Oil Blend"},
	model.MealSnacks:    {"Myprotein Impact Whey Protein (1 scoop)", "Apple (raw)", "Banana (raw)", "Mejdool Dates (raw)", "Lean cookie"},
	model.MealDinner:    {"White Rice (raw)", "Chicken Breast (raw)", "Indian Dal Fry (cooked)", "Carrot (raw)", "Curd", "Ghee/Butter/Coconut Oil Blend", "Mejdool Dates (raw)"},
}
