package configs

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"job-portal-service/internal/models"
)

const (
	rolePath          = "role.role"
	jobPostsPath      = "role.data.job_posts"
	employerInfoPath  = "role.data.employerInfo"
	candidateInfoPath = "role.data.candidateInfo"

	ApplicantsList = "applicants"
	InvitedList    = "invited"
)

func unwind(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: "$" + path}}
}

func match(filter bson.M) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

// JobSearchFilter ANDs one clause per non-empty search field. Designation is
// a case-insensitive substring match; the rest are exact.
func JobSearchFilter(s models.JobSearch) bson.M {
	filter := bson.M{}
	if s.Location != "" {
		filter[employerInfoPath+".location"] = s.Location
	}
	if s.Designation != "" {
		filter[jobPostsPath+".designation"] = primitive.Regex{Pattern: regexp.QuoteMeta(s.Designation), Options: "i"}
	}
	if s.Category != "" {
		filter[jobPostsPath+".category"] = s.Category
	}
	if s.Position != "" {
		filter[jobPostsPath+".position"] = s.Position
	}
	if s.Setup != "" {
		filter[jobPostsPath+".setup"] = s.Setup
	}
	return filter
}

// JobSearchPipeline yields one row per job post that passes the filter.
func JobSearchPipeline(s models.JobSearch) mongo.Pipeline {
	return mongo.Pipeline{
		unwind(jobPostsPath),
		match(JobSearchFilter(s)),
	}
}

// JobPostsWithCompanyPipeline yields every job post with the employer's
// company copied onto it.
func JobPostsWithCompanyPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		unwind(jobPostsPath),
		{{Key: "$addFields", Value: bson.M{jobPostsPath + ".company": "$" + employerInfoPath + ".company"}}},
	}
}

func CategoryCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		unwind(jobPostsPath),
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + jobPostsPath + ".category",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

// SkillsFilter requires every requested skill to be present on the candidate.
func SkillsFilter(skills []string) bson.M {
	if len(skills) == 0 {
		return bson.M{}
	}
	return bson.M{candidateInfoPath + ".skills.itemName": bson.M{"$all": skills}}
}

func CandidateSearchPipeline(skills []string) mongo.Pipeline {
	return mongo.Pipeline{
		unwind(candidateInfoPath),
		match(SkillsFilter(skills)),
	}
}

// EmployerJobsPipeline lists the job posts whose list (applicants or invited)
// holds a record for the candidate, one row per job post, merged with the
// employer's info and id. Other candidates' records are stripped.
func EmployerJobsPipeline(list, candidateID string) mongo.Pipeline {
	listPath := jobPostsPath + "." + list
	return mongo.Pipeline{
		unwind(jobPostsPath),
		unwind(listPath),
		match(bson.M{listPath + ".id": candidateID}),
		{{Key: "$group", Value: bson.M{
			"_id":          "$" + jobPostsPath + "._jobId",
			"jobPost":      bson.M{"$first": "$" + jobPostsPath},
			"record":       bson.M{"$first": "$" + listPath},
			"employerInfo": bson.M{"$first": "$" + employerInfoPath},
			"employerId":   bson.M{"$first": "$_id"},
		}}},
		{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": bson.M{"$mergeObjects": bson.A{
				"$jobPost",
				bson.M{"employerInfo": "$employerInfo", "employerId": "$employerId", "record": "$record"},
			}},
		}}},
		{{Key: "$project", Value: bson.M{ApplicantsList: 0, InvitedList: 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "date_posted", Value: -1}}}},
	}
}
