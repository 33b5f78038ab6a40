package refdata

import "labelscan/internal/domain"

// Builtin returns the curated seed records shipped with the binary. The
// seedrefs command turns these into SQL for the ingredient_refs table; the
// server falls back to them when that table is empty.
func Builtin() []domain.IngredientRecord {
	return []domain.IngredientRecord{
		{CanonicalName: "water", Aliases: []string{"aqua", "purified water", "carbonated water"}, Category: "solvent", Safety: domain.SafetySafe, Natural: true, Description: "Universal solvent and base of most beverages."},
		{CanonicalName: "sugar", Aliases: []string{"sucrose", "cane sugar"}, Category: "sweetener", Safety: domain.SafetyModerate, Natural: true, Description: "Refined sweetener; excess intake is linked to metabolic issues."},
		{CanonicalName: "brown sugar", Category: "sweetener", Safety: domain.SafetyModerate, Natural: true, Description: "Partially refined sugar with residual molasses."},
		{CanonicalName: "high fructose corn syrup", Aliases: []string{"hfcs", "corn syrup"}, Category: "sweetener", Safety: domain.SafetyCaution, Natural: false, Description: "Heavily processed corn-derived sweetener."},
		{CanonicalName: "aspartame", Category: "sweetener", Safety: domain.SafetyCaution, Natural: false, Description: "Non-nutritive sweetener; contains phenylalanine."},
		{CanonicalName: "sucralose", Aliases: []string{"sucrolose", "sacrolese"}, Category: "sweetener", Safety: domain.SafetyModerate, Natural: false, Description: "Non-nutritive chlorinated sweetener."},
		{CanonicalName: "honey", Category: "sweetener", Safety: domain.SafetySafe, Natural: true, Description: "Natural sweetener produced by bees."},
		{CanonicalName: "citric acid", Aliases: []string{"citricacid"}, Category: "acidulant", Safety: domain.SafetySafe, Natural: true, Description: "Acidulant and flavoring agent, naturally present in citrus."},
		{CanonicalName: "ascorbic acid", Aliases: []string{"vitamin c"}, Category: "antioxidant", Safety: domain.SafetySafe, Natural: true, Description: "Vitamin C, used as an antioxidant and fortifier."},
		{CanonicalName: "niacin", Aliases: []string{"vitamin b3", "nicotinic acid"}, Category: "fortifier", Safety: domain.SafetySafe, Natural: true, Description: "B vitamin added to enriched flours."},
		{CanonicalName: "potassium sorbate", Aliases: []string{"potassiumsorbate"}, Category: "preservative", Safety: domain.SafetySafe, Natural: false, Description: "Widely used mold and yeast inhibitor."},
		{CanonicalName: "sodium benzoate", Aliases: []string{"sodiumbenzoate"}, Category: "preservative", Safety: domain.SafetyModerate, Natural: false, Description: "Preservative; may form benzene with vitamin C under heat."},
		{CanonicalName: "methylparaben", Aliases: []string{"methyl parabens"}, Category: "preservative", Safety: domain.SafetyCaution, Natural: false, Description: "Paraben preservative with endocrine-activity concerns."},
		{CanonicalName: "sodium nitrite", Category: "preservative", Safety: domain.SafetyAvoid, Natural: false, Description: "Curing agent in processed meats; nitrosamine precursor."},
		{CanonicalName: "butylated hydroxyanisole", Aliases: []string{"bha"}, Category: "preservative", Safety: domain.SafetyAvoid, Natural: false, Description: "Synthetic antioxidant classified as a possible carcinogen."},
		{CanonicalName: "partially hydrogenated soybean oil", Aliases: []string{"partially hydrogenated oil"}, Category: "fat", Safety: domain.SafetyAvoid, Natural: false, AllergenTags: []string{"soy"}, Description: "Primary dietary source of artificial trans fat."},
		{CanonicalName: "glucuronolactone", Aliases: []string{"gluceronolactone"}, Category: "additive", Safety: domain.SafetyModerate, Natural: false, Description: "Energy drink additive."},
		{CanonicalName: "caffeine", Category: "stimulant", Safety: domain.SafetyModerate, Natural: true, Description: "Central nervous system stimulant."},
		{CanonicalName: "taurine", Category: "additive", Safety: domain.SafetyModerate, Natural: false, Description: "Amino sulfonic acid common in energy drinks."},
		{CanonicalName: "natural flavors", Aliases: []string{"natural flavor", "natural flavoring"}, Category: "flavoring", Safety: domain.SafetySafe, Natural: true, Description: "Flavoring derived from plant or animal sources."},
		{CanonicalName: "yellow 5", Aliases: []string{"tartrazine", "e102"}, Category: "colorant", Safety: domain.SafetyCaution, Natural: false, Description: "Azo dye associated with hyperactivity concerns."},
		{CanonicalName: "red 40", Aliases: []string{"allura red", "e129"}, Category: "colorant", Safety: domain.SafetyCaution, Natural: false, Description: "Azo dye; most common artificial food coloring."},
		{CanonicalName: "salt", Aliases: []string{"sodium chloride", "sea salt"}, Category: "seasoning", Safety: domain.SafetyModerate, Natural: true, Description: "Sodium source; excess intake raises blood pressure."},
		{CanonicalName: "monosodium glutamate", Aliases: []string{"msg", "e621"}, Category: "flavor enhancer", Safety: domain.SafetyModerate, Natural: false, Description: "Umami flavor enhancer."},
		{CanonicalName: "wheat flour", Aliases: []string{"flour", "enriched wheat flour", "enriched flour"}, Category: "grain", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"gluten"}, Description: "Milled wheat; contains gluten."},
		{CanonicalName: "milk", Aliases: []string{"whole milk", "skim milk"}, Category: "dairy", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"dairy", "milk"}, Description: "Dairy base ingredient."},
		{CanonicalName: "cream", Aliases: []string{"heavy cream"}, Category: "dairy", Safety: domain.SafetyModerate, Natural: true, AllergenTags: []string{"dairy", "milk"}, Description: "High-fat dairy fraction."},
		{CanonicalName: "whey", Aliases: []string{"whey protein"}, Category: "dairy", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"dairy", "milk"}, Description: "Milk protein byproduct of cheesemaking."},
		{CanonicalName: "eggs", Aliases: []string{"egg", "whole eggs", "egg whites"}, Category: "protein", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"eggs"}, Description: "Whole egg or egg-derived ingredient."},
		{CanonicalName: "peanuts", Aliases: []string{"peanut", "groundnuts"}, Category: "legume", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"peanuts"}, Description: "Legume and major allergen."},
		{CanonicalName: "almonds", Aliases: []string{"almond"}, Category: "nut", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"nuts"}, Description: "Tree nut."},
		{CanonicalName: "soy lecithin", Aliases: []string{"lecithin"}, Category: "emulsifier", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"soy"}, Description: "Soy-derived emulsifier."},
		{CanonicalName: "sesame seeds", Aliases: []string{"sesame"}, Category: "seed", Safety: domain.SafetySafe, Natural: true, AllergenTags: []string{"sesame"}, Description: "Seed and declared allergen."},
		{CanonicalName: "sulfur dioxide", Aliases: []string{"e220"}, Category: "preservative", Safety: domain.SafetyCaution, Natural: false, AllergenTags: []string{"sulfites"}, Description: "Sulfite preservative; can trigger sensitivity reactions."},
		{CanonicalName: "calcium carbonate", Aliases: []string{"calciumcarbonate"}, Category: "fortifier", Safety: domain.SafetySafe, Natural: true, Description: "Calcium fortifier and anticaking agent."},
		{CanonicalName: "xanthan gum", Category: "thickener", Safety: domain.SafetySafe, Natural: false, Description: "Fermentation-derived thickener."},
		{CanonicalName: "sunflower oil", Category: "fat", Safety: domain.SafetySafe, Natural: true, Description: "Common seed oil."},
		{CanonicalName: "palm oil", Category: "fat", Safety: domain.SafetyModerate, Natural: true, Description: "Saturated-fat-heavy vegetable oil."},
		{CanonicalName: "cocoa butter", Category: "fat", Safety: domain.SafetySafe, Natural: true, Description: "Fat pressed from cocoa beans."},
	}
}

// LoadBuiltin builds a Database from the builtin seed. It panics only on a
// programming error in the seed itself.
func LoadBuiltin() *Database {
	db, err := New(Builtin())
	if err != nil {
		panic(err)
	}
	return db
}
