package catalog

// SeedProducts returns the fixed session catalog.
func SeedProducts() []*Product {
	return []*Product{
		NewProduct(ProductKeyboard, "Bug-Squashing Keyboard", 10000, 50),
		NewProduct(ProductMouse, "Productivity Burst Mouse", 20000, 30),
		NewProduct(ProductMonitorArm, "Posture-Saving Monitor Arm", 30000, 20),
		NewProduct(ProductLaptopCase, "Error-Proof Laptop Case", 15000, 0),
		NewProduct(ProductSpeaker, "Lo-Fi Coding Speaker", 25000, 10),
	}
}
