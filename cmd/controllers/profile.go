package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"

	"job-portal-service/internal/apperror"
	"job-portal-service/internal/models"
)

var (
	employerFiles  = map[string]fileKind{"logo": imageFile, "banner": imageFile}
	candidateFiles = map[string]fileKind{"image": imageFile, "banner": imageFile, "resume": documentFile}
)

// setFields turns a profile into the fields a partial update sets. Empty
// members are dropped by their omitempty tags.
func setFields(v interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func isJSON(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEJSON
}

func employerInfoFromRequest(c *gin.Context) (models.EmployerInfo, error) {
	var info models.EmployerInfo
	if isJSON(c) {
		if err := c.ShouldBindJSON(&info); err != nil {
			return info, apperror.New(http.StatusBadRequest, "invalid request body", err)
		}
		return info, nil
	}
	info.Company = c.PostForm("company")
	info.About = c.PostForm("about")
	info.Industry = c.PostForm("industry")
	info.Location = c.PostForm("location")
	return info, nil
}

// candidateInfoFromRequest reads a candidate profile either from a JSON body
// or from form fields, where skills, education and work arrive as JSON text.
func candidateInfoFromRequest(c *gin.Context) (models.CandidateInfo, error) {
	var info models.CandidateInfo
	if isJSON(c) {
		if err := c.ShouldBindJSON(&info); err != nil {
			return info, apperror.New(http.StatusBadRequest, "invalid request body", err)
		}
		return info, nil
	}
	info.Name = c.PostForm("name")
	info.Phone = c.PostForm("phone")
	info.Designation = c.PostForm("designation")
	info.Location = c.PostForm("location")
	info.Salary = c.PostForm("salary")
	info.About = c.PostForm("about")

	lists := map[string]interface{}{
		"skills":    &info.Skills,
		"education": &info.Education,
		"work":      &info.Work,
	}
	for field, dst := range lists {
		raw := c.PostForm(field)
		if raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return info, apperror.New(http.StatusBadRequest, field+" must be a JSON array", err)
		}
	}
	return info, nil
}
