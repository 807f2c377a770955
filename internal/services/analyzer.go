package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/matching"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, analysisID uuid.UUID) error
}

// SkillExtractor is implemented by matching.Extractor.
type SkillExtractor interface {
	ExtractSkills(text string) (matching.SkillSet, error)
}

type analyzerService struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	extractor    DocumentExtractor
	skills       SkillExtractor
	gemini       GeminiService
	feedback     FeedbackService
	storage      StorageService
	missingLimit int
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	extractor DocumentExtractor,
	skills SkillExtractor,
	gemini GeminiService,
	feedback FeedbackService,
	storage StorageService,
	missingLimit int,
) AnalyzerService {
	return &analyzerService{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		extractor:    extractor,
		skills:       skills,
		gemini:       gemini,
		feedback:     feedback,
		storage:      storage,
		missingLimit: missingLimit,
	}
}

// Analyze runs the full pipeline for one analysis. Only missing documents
// fail it; every model or computation failure inside the pipeline degrades
// to a defined default so the result shape is always complete.
func (a *analyzerService) Analyze(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job ID: %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	resumeDoc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	jobDoc, err := a.docRepo.FindByID(analysis.JobDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Job description document not found: %v", err))
		return fmt.Errorf("failed to get job description document: %w", err)
	}

	// Step 1: Extract document texts
	log.Println("📄 Extracting document texts...")
	resumeText, err := a.extractor.ExtractText(resumeDoc.FilePath)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to read resume: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobText, err := a.extractor.ExtractText(jobDoc.FilePath)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to read job description: %v", err))
		return fmt.Errorf("failed to extract job description text: %w", err)
	}

	// Skill extraction and embeddings consume normalized text; the ATS
	// checks stay on the raw text because they are line-oriented.
	normalizedResume := matching.NormalizeText(resumeText)
	normalizedJob := matching.NormalizeText(jobText)

	// Step 2: Skill extraction and gap analysis
	log.Println("🔍 Extracting skills...")
	resumeSkills := a.extractSkillsOrEmpty(normalizedResume, "resume")
	jobSkills := a.extractSkillsOrEmpty(normalizedJob, "job description")

	matchedSkills := matching.Intersect(resumeSkills, jobSkills)
	missingSkills := matching.MissingSkills(jobSkills, resumeSkills, a.missingLimit)

	// Step 3: Embedding similarity and fit score
	log.Println("📐 Computing fit score...")
	resumeVec := a.embedOrZero(ctx, normalizedResume, "resume")
	jobVec := a.embedOrZero(ctx, normalizedJob, "job description")

	similarity, err := matching.CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		log.Printf("⚠️  Similarity computation failed, using neutral score: %v\n", err)
		similarity = matching.NeutralSimilarity
	}
	fitScore := matching.FitScore(similarity)

	// Step 4: Narrative feedback
	log.Println("🤖 Generating feedback with LLM...")
	feedback, err := a.feedback.GenerateFeedback(ctx, resumeText, jobText)
	if err != nil {
		log.Printf("⚠️  Feedback generation failed, using placeholder: %v\n", err)
		feedback = PlaceholderFeedback()
	}

	// Step 5: ATS compatibility checks
	log.Println("📋 Running ATS compatibility checks...")
	atsReport := matching.CheckATS(resumeText, jobText, matchedSkills)

	// Step 6: Save result
	log.Println("💾 Saving analysis result...")
	result := &models.AnalysisResult{
		FitScore:      fitScore,
		MatchedSkills: matchedSkills.Sorted(),
		MissingSkills: missingSkills,
		Improvements:  feedback.Improvements,
		Summary:       feedback.Summary,
		AtsReport:     atsReport,
	}

	if err := a.analysisRepo.UpdateResult(analysisID, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	a.cleanupDocument(resumeDoc)
	a.cleanupDocument(jobDoc)

	log.Printf("✅ Analysis completed successfully for job ID: %s\n", analysisID)
	return nil
}

// extractSkillsOrEmpty substitutes an empty set when the NLP pipeline is
// unavailable; extraction failure must not abort the analysis.
func (a *analyzerService) extractSkillsOrEmpty(text, label string) matching.SkillSet {
	skills, err := a.skills.ExtractSkills(text)
	if err != nil {
		log.Printf("⚠️  Skill extraction failed for %s, using empty set: %v\n", label, err)
		return make(matching.SkillSet)
	}
	return skills
}

// embedOrZero substitutes a zero vector of the expected dimensionality when
// the embedding model is unavailable. The zero vector is a defined
// degenerate value: cosine similarity against it is exactly 0.
func (a *analyzerService) embedOrZero(ctx context.Context, text, label string) []float32 {
	vec, err := a.gemini.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Printf("⚠️  Embedding failed for %s, using zero vector: %v\n", label, err)
		return make([]float32, a.gemini.EmbeddingDimensions())
	}
	return vec
}

func (a *analyzerService) cleanupDocument(doc *models.Document) {
	if err := a.storage.DeleteFile(doc.Filename); err != nil {
		log.Printf("⚠️  Failed to remove temp file %s: %v\n", doc.Filename, err)
	}
	if err := a.docRepo.Delete(doc.ID); err != nil {
		log.Printf("⚠️  Failed to remove document record %s: %v\n", doc.ID, err)
	}
}
