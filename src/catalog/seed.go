package catalog

// DefaultProfiles returns the stock marketplace catalog, so the module
// runs stand-alone without a backing store.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			ID:              "1",
			Name:            "ResumeAI",
			Description:     "AI-powered resume analyzer and optimizer for job seekers",
			LongDescription: "ResumeAI uses advanced natural language processing to analyze resumes, identify areas for improvement, and suggest optimizations based on industry best practices. It can help you tailor your resume for specific job postings and increase your chances of getting hired.",
			Price:           0.05,
			Currency:        "ETH",
			Rating:          4.8,
			TotalUses:       15420,
			Author:          "CareerTech Labs",
			Category:        CategoryPopular,
			Image:           "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"career", "AI", "optimization"},
			Verified:        true,
			CreatedAt:       "2024-01-15",
		},
		{
			ID:              "2",
			Name:            "CodeReviewer",
			Description:     "Automated code review and security analysis agent",
			LongDescription: "CodeReviewer performs comprehensive code analysis, identifying potential bugs, security vulnerabilities, and optimization opportunities. It supports multiple programming languages and integrates with popular development workflows.",
			Price:           0.1,
			Currency:        "ETH",
			Rating:          4.9,
			TotalUses:       8930,
			Author:          "DevSecure",
			Category:        CategoryMacro,
			Image:           "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"development", "security", "automation"},
			Verified:        true,
			CreatedAt:       "2024-01-10",
		},
		{
			ID:              "3",
			Name:            "MarketAnalyst",
			Description:     "Real-time crypto market analysis and trading signals",
			LongDescription: "MarketAnalyst provides real-time cryptocurrency market analysis, technical indicators, and trading signals. It uses machine learning to identify patterns and predict market movements with high accuracy.",
			Price:           0.25,
			Currency:        "ETH",
			Rating:          4.6,
			TotalUses:       5670,
			Author:          "CryptoIntel",
			Category:        CategoryMacro,
			Image:           "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"trading", "analysis", "crypto"},
			Verified:        true,
			CreatedAt:       "2024-01-08",
		},
		{
			ID:              "4",
			Name:            "ContentCreator",
			Description:     "AI content generator for social media and blogs",
			LongDescription: "ContentCreator helps you generate engaging content for various platforms including Twitter, LinkedIn, Instagram, and blogs. It understands your brand voice and creates content that resonates with your audience.",
			Price:           0.03,
			Currency:        "ETH",
			Rating:          4.7,
			TotalUses:       12340,
			Author:          "MediaMind",
			Category:        CategoryPopular,
			Image:           "https://images.unsplash.com/photo-1432888622747-4eb9a8efeb07?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"content", "social media", "marketing"},
			Verified:        false,
			CreatedAt:       "2024-01-12",
		},
		{
			ID:              "5",
			Name:            "DataCleaner",
			Description:     "Automated data cleaning and preprocessing",
			LongDescription: "DataCleaner automates the tedious process of data cleaning and preprocessing. It can handle missing values, outliers, data type conversions, and format standardization across various data formats.",
			Price:           0.02,
			Currency:        "ETH",
			Rating:          4.5,
			TotalUses:       3210,
			Author:          "DataFlow",
			Category:        CategoryMicro,
			Image:           "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"data", "preprocessing", "automation"},
			Verified:        true,
			CreatedAt:       "2024-01-05",
		},
		{
			ID:              "6",
			Name:            "TranslateBot",
			Description:     "Multi-language translation with context awareness",
			LongDescription: "TranslateBot provides accurate translations across 100+ languages with deep understanding of context, idioms, and cultural nuances. Perfect for international business communications.",
			Price:           0.01,
			Currency:        "ETH",
			Rating:          4.8,
			TotalUses:       18750,
			Author:          "LinguaTech",
			Category:        CategoryPopular,
			Image:           "https://images.unsplash.com/photo-1526661934255-5233e8f3c3a9?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"translation", "language", "communication"},
			Verified:        true,
			CreatedAt:       "2024-01-20",
		},
		{
			ID:              "7",
			Name:            "LegalAssistant",
			Description:     "Legal document analysis and contract review",
			LongDescription: "LegalAssistant helps analyze legal documents, identify potential issues, and provide recommendations for contract terms. It supports various document types and jurisdictions.",
			Price:           0.5,
			Currency:        "ETH",
			Rating:          4.9,
			TotalUses:       1890,
			Author:          "LegalTech Pro",
			Category:        CategoryMacro,
			Image:           "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"legal", "contracts", "analysis"},
			Verified:        true,
			CreatedAt:       "2024-01-03",
		},
		{
			ID:              "8",
			Name:            "ImageOptimizer",
			Description:     "Batch image processing and optimization",
			LongDescription: "ImageOptimizer provides automated image processing including resizing, compression, format conversion, and quality enhancement. Perfect for web developers and content creators.",
			Price:           0.005,
			Currency:        "ETH",
			Rating:          4.4,
			TotalUses:       7650,
			Author:          "PixelCraft",
			Category:        CategoryMicro,
			Image:           "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400&h=300&fit=crop&auto=format",
			Tags:            []string{"image", "optimization", "processing"},
			Verified:        false,
			CreatedAt:       "2024-01-18",
		},
	}
}

// DefaultCatalog returns a static catalog seeded with the stock profiles.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(DefaultProfiles())
}
