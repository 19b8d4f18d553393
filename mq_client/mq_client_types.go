package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue    string `yaml:"queue"`
	Exchange string `yaml:"exchange"`
}

type MQClientConfig struct {
	Exchange struct {
		Events Exchange `yaml:"events"`
	}
	Queue struct {
		KycReview Queue `yaml:"kyc_review"`
		PixSweep  Queue `yaml:"pix_sweep"`
	}
	Binding struct {
		KycReview Binding `yaml:"kyc_review"`
		PixSweep  Binding `yaml:"pix_sweep"`
	}
}
