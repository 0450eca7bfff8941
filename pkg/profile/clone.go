package profile

// Clone returns a deep copy that shares no maps or slices with p.
func (p Profile) Clone() (c Profile) {
	c = p
	c.Title = p.Title.clone()
	c.Bio = p.Bio.clone()

	if p.Social != nil {
		c.Social = make(Social, len(p.Social))
		for k, v := range p.Social {
			c.Social[k] = v
		}
	}

	c.Experience = cloneSlice(p.Experience, func(w WorkExperience) WorkExperience {
		w.Position = w.Position.clone()
		w.Description = w.Description.clone()
		w.Technologies = cloneStrings(w.Technologies)
		return w
	})

	c.Certifications = cloneSlice(p.Certifications, func(cert Certification) Certification {
		return cert
	})

	c.Speaking = cloneSlice(p.Speaking, func(s Speaking) Speaking {
		s.Title = s.Title.clone()
		s.Description = s.Description.clone()
		return s
	})

	c.Education = cloneSlice(p.Education, func(e Education) Education {
		e.Degree = e.Degree.clone()
		e.Field = e.Field.clone()
		e.Achievements = e.Achievements.clone()
		return e
	})

	c.Skills = cloneSlice(p.Skills, func(s SkillCategory) SkillCategory {
		s.Name = s.Name.clone()
		s.Skills = cloneStrings(s.Skills)
		return s
	})

	return c
}

func (t Text) clone() (c Text) {
	if t == nil {
		return c
	}
	c = make(Text, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

func (t TextList) clone() (c TextList) {
	if t == nil {
		return c
	}
	c = make(TextList, len(t))
	for k, v := range t {
		c[k] = cloneStrings(v)
	}
	return c
}

func cloneStrings(in []string) (out []string) {
	if in == nil {
		return out
	}
	out = make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSlice[T any](in []T, fn func(T) T) (out []T) {
	if in == nil {
		return out
	}
	out = make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
